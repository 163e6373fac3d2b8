package systems

import (
	"github.com/decker502/codexatlas/pkg/components"
	"github.com/decker502/codexatlas/pkg/ecs"
	"github.com/decker502/codexatlas/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockInput 用于测试的 mock 输入
// 每次 Update 之后调用 frame() 清空"刚按下/刚释放"类的单帧状态
type mockInput struct {
	x, y         int
	pressed      bool
	justPressed  bool
	justReleased bool
	wheelX       float64
	wheelY       float64
	keys         map[ebiten.Key]bool
}

func newMockInput() *mockInput {
	return &mockInput{keys: map[ebiten.Key]bool{}}
}

func (m *mockInput) CursorPosition() (int, int)  { return m.x, m.y }
func (m *mockInput) IsPointerPressed() bool      { return m.pressed }
func (m *mockInput) IsPointerJustPressed() bool  { return m.justPressed }
func (m *mockInput) IsPointerJustReleased() bool { return m.justReleased }
func (m *mockInput) Wheel() (float64, float64)   { return m.wheelX, m.wheelY }
func (m *mockInput) IsKeyJustPressed(key ebiten.Key) bool {
	return m.keys[key]
}

// move 移动指针
func (m *mockInput) move(x, y int) {
	m.x, m.y = x, y
}

// press 在 (x, y) 按下
func (m *mockInput) press(x, y int) {
	m.move(x, y)
	m.pressed = true
	m.justPressed = true
}

// release 在当前位置释放
func (m *mockInput) release() {
	m.pressed = false
	m.justReleased = true
}

// click 在 (x, y) 完成一次点击（释放帧）
func (m *mockInput) click(x, y int) {
	m.move(x, y)
	m.release()
}

// key 按下一个键（单帧）
func (m *mockInput) key(k ebiten.Key) {
	m.keys[k] = true
}

// frame 清空单帧状态
func (m *mockInput) frame() {
	m.justPressed = false
	m.justReleased = false
	m.wheelX, m.wheelY = 0, 0
	clear(m.keys)
}

// newTestViewport 创建视口单例
func newTestViewport(em *ecs.EntityManager, w, h, docH float64) *components.ViewportComponent {
	id := em.CreateEntity()
	vp := &components.ViewportComponent{Width: w, Height: h, DocHeight: docH}
	em.AddComponent(id, vp)
	return vp
}

// addBounds 创建一个带文档坐标矩形的实体
func addBounds(em *ecs.EntityManager, r utils.Rect) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.BoundsComponent{Rect: r})
	return id
}
