package widgets

// SoundPlayer 音效播放接口
// 控件只依赖这个最小接口，由宿主注入具体的音频实现；
// 注入 nil 时控件静默工作
type SoundPlayer interface {
	// PlaySound 播放指定 ID 的音效
	PlaySound(id string)
}
