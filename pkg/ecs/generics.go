package ecs

import "reflect"

// 泛型查询 API，系统代码统一使用这些函数，避免手写 reflect.TypeOf 和类型断言。

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// GetComponent 获取实体的 T 类型组件
// 返回: 组件实例和是否找到
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponentByType(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponentOf 检查实体是否拥有 T 类型组件
func HasComponentOf[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponentOf 移除实体的 T 类型组件
func RemoveComponentOf[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有 T1 组件的实体（升序）
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 组件的实体（升序）
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// First 返回第一个拥有 T 组件的实体及其组件
// 页面上的单例控件（导航栏、灯箱、终端）通过它查找
func First[T any](em *EntityManager) (EntityID, T, bool) {
	var zero T
	ids := GetEntitiesWith1[T](em)
	if len(ids) == 0 {
		return 0, zero, false
	}
	comp, ok := GetComponent[T](em, ids[0])
	return ids[0], comp, ok
}
