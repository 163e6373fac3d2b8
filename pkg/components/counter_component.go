package components

import "math"

// CounterComponent 统计数字滚动动画
type CounterComponent struct {
	Label  string
	Target int
	// Step 每次更新增加的值 = Target / (Duration / FrameInterval)
	Step float64
	// Threshold 开始动画所需的可见比例
	Threshold float64

	Started bool
	Done    bool
	Current float64
}

// Display 返回当前显示的整数
func (c *CounterComponent) Display() int {
	if c.Done {
		return c.Target
	}
	return int(math.Floor(c.Current))
}
