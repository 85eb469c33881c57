// Package timer 提供帧驱动的定时器服务
//
// 游戏循环每帧调用 Update(deltaTime) 推进内部时钟并同步触发到期回调，
// 回调始终在调用 Update 的协程上执行，不产生额外协程。
// 长按判定等交互逻辑依赖该服务做到期一次性回调。
package timer

// Handle 定时器句柄
// 由 SetTimeout 返回，用于 ClearTimeout 取消
type Handle int64

// None 无效句柄哨兵值
// 清除 None 是安全的无操作，方便"句柄字段始终可清"的使用方式
const None Handle = 0

// entry 一条待触发的定时任务
type entry struct {
	id         Handle
	dueMs      float64 // 到期时刻（服务内部时钟，毫秒）
	intervalMs float64 // repeat 模式下的重复间隔（毫秒）
	repeat     bool
	cleared    bool
	callback   func()
}

// Service 定时器服务
// 内部时钟只由 Update 推进，测试中可精确控制时间流逝
type Service struct {
	nowMs   float64
	nextID  Handle
	entries []*entry
}

// NewService 创建定时器服务
func NewService() *Service {
	return &Service{
		nextID: 1, // 句柄从1开始，0保留为 None
	}
}

// SetTimeout 安排一个延迟回调
//
// 参数：
//   - callback: 到期时调用的回调，nil 时不安排并返回 None
//   - delayMs: 延迟毫秒数，0 或负数表示下一次 Update 即触发
//   - repeat: true 表示按 delayMs 为间隔重复触发，false 表示只触发一次
//
// 返回：
//   - Handle: 用于 ClearTimeout 的句柄
func (s *Service) SetTimeout(callback func(), delayMs float64, repeat bool) Handle {
	if callback == nil {
		return None
	}
	if delayMs < 0 {
		delayMs = 0
	}
	id := s.nextID
	s.nextID++
	s.entries = append(s.entries, &entry{
		id:         id,
		dueMs:      s.nowMs + delayMs,
		intervalMs: delayMs,
		repeat:     repeat,
		callback:   callback,
	})
	return id
}

// ClearTimeout 取消一个定时任务
// 句柄为 None、已触发或已取消时为安全的无操作
func (s *Service) ClearTimeout(h Handle) {
	if h == None {
		return
	}
	for _, e := range s.entries {
		if e.id == h {
			e.cleared = true
			e.callback = nil
			return
		}
	}
}

// Update 推进内部时钟并触发所有到期回调
//
// deltaTime 单位为秒（与游戏循环一致）。触发顺序为安排顺序；
// 回调中安排的新任务从下一次 Update 起结算；回调中取消的待触发
// 任务（包括尚未轮到的同帧任务）不再触发。repeat 任务每次 Update
// 至多触发一次，下次到期从当前时刻起算，不做积压补偿。
func (s *Service) Update(deltaTime float64) {
	s.nowMs += deltaTime * 1000

	// 只结算本次进入 Update 时已存在的条目
	n := len(s.entries)
	for i := 0; i < n; i++ {
		e := s.entries[i]
		if e.cleared || e.dueMs > s.nowMs {
			continue
		}
		if e.repeat {
			e.dueMs = s.nowMs + e.intervalMs
			e.callback()
			continue
		}
		// 一次性任务先出队再回调，回调里重新安排同一逻辑是安全的
		e.cleared = true
		callback := e.callback
		e.callback = nil
		callback()
	}

	s.compact()
}

// Pending 返回待触发任务数（用于测试和诊断）
func (s *Service) Pending() int {
	count := 0
	for _, e := range s.entries {
		if !e.cleared {
			count++
		}
	}
	return count
}

// IsPending 返回句柄对应的任务是否仍在等待触发
func (s *Service) IsPending(h Handle) bool {
	if h == None {
		return false
	}
	for _, e := range s.entries {
		if e.id == h && !e.cleared {
			return true
		}
	}
	return false
}

// compact 移除已结清的条目
func (s *Service) compact() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if !e.cleared {
			kept = append(kept, e)
		}
	}
	// 防止尾部残留引用
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = kept
}
