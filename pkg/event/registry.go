package event

// Registry 指针事件注册表
// 按（事件类型，目标对象）维护回调，目标以接口同一性作为键
//
// 职责：
//   - Register/Release 维护注册关系（同一键重复注册时后注册的生效）
//   - Dispatch 调用指定目标的回调并返回其传播信号
//   - Targets 按注册顺序给出某类事件的目标快照，供输入适配层遍历
//
// 注册表不做命中检测，也不做捕获/冒泡：派发顺序由调用方控制
type Registry struct {
	// 事件类型 -> 目标 -> 回调
	handlers map[Type]map[any]Handler
	// 事件类型 -> 目标注册顺序（Targets 遍历需要稳定顺序）
	order map[Type][]any
}

// NewRegistry 创建事件注册表
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[Type]map[any]Handler),
		order:    make(map[Type][]any),
	}
}

// Register 为目标注册某类事件的回调
// target 为 nil 或 handler 为 nil 时不注册
// 同一（类型，目标）键重复注册时覆盖旧回调，注册顺序保持首次注册的位置
func (r *Registry) Register(t Type, target any, handler Handler) {
	if target == nil || handler == nil {
		return
	}
	m, ok := r.handlers[t]
	if !ok {
		m = make(map[any]Handler)
		r.handlers[t] = m
	}
	if _, exists := m[target]; !exists {
		r.order[t] = append(r.order[t], target)
	}
	m[target] = handler
}

// Release 释放目标在某类事件上的注册
// 未注册时为安全的无操作
func (r *Registry) Release(t Type, target any) {
	m, ok := r.handlers[t]
	if !ok {
		return
	}
	if _, exists := m[target]; !exists {
		return
	}
	delete(m, target)
	r.order[t] = removeTarget(r.order[t], target)
}

// ReleaseTarget 释放目标的所有注册
// 控件整体停用或销毁时使用
func (r *Registry) ReleaseTarget(target any) {
	for t := range r.handlers {
		r.Release(t, target)
	}
}

// Dispatch 向目标派发事件
// 返回回调的传播信号；目标未注册该类事件时返回 true（视为未消费，继续传播）
func (r *Registry) Dispatch(t Type, target any, e *PointerEvent) bool {
	m, ok := r.handlers[t]
	if !ok {
		return true
	}
	handler, ok := m[target]
	if !ok {
		return true
	}
	return handler(e)
}

// Targets 返回某类事件的目标快照（按注册顺序）
// 返回副本，调用方在遍历期间 Register/Release 不会影响快照
func (r *Registry) Targets(t Type) []any {
	src := r.order[t]
	if len(src) == 0 {
		return nil
	}
	targets := make([]any, len(src))
	copy(targets, src)
	return targets
}

// Len 返回全部注册条目数（用于测试和诊断）
func (r *Registry) Len() int {
	total := 0
	for _, m := range r.handlers {
		total += len(m)
	}
	return total
}

// removeTarget 从顺序切片中移除目标
func removeTarget(s []any, target any) []any {
	for i, t := range s {
		if t == target {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
