// Package audio 提供控件音效的注册与播放
//
// Manager 以音效 ID 为键缓存播放器，实现 widgets.SoundPlayer 接口。
// 控件层只依赖接口，宿主在组装阶段决定是否注入真实的音频后端。
package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Manager 音效管理器
// 职责：
//   - 统一管理控件音效的注册与播放
//   - 提供总开关和音量控制（与设置联动由宿主完成）
//   - 通过音效 ID 播放，调用方无需关心音频数据来源
type Manager struct {
	ctx     *audio.Context           // 音频上下文（进程内唯一）
	players map[string]*audio.Player // 音效播放器缓存（音效 ID -> 播放器）
	enabled bool
	volume  float64
}

// NewManager 创建音效管理器
//
// 参数：
//   - ctx: 音频上下文，由宿主创建（每个进程只能有一个）
func NewManager(ctx *audio.Context) *Manager {
	return &Manager{
		ctx:     ctx,
		players: make(map[string]*audio.Player),
		enabled: true,
		volume:  1.0,
	}
}

// RegisterSound 注册一段编码音频为音效
// 根据 ext 选择解码器，解码后缓存为可重复播放的播放器
//
// 参数：
//   - id: 音效 ID（如 "click", "toggle"）
//   - data: 音频文件内容
//   - ext: 格式扩展名（支持 ".wav" 和 ".ogg"）
//
// 返回：
//   - error: 如果格式不支持或解码失败返回错误
func (m *Manager) RegisterSound(id string, data []byte, ext string) error {
	reader := bytes.NewReader(data)

	var stream io.ReadSeeker
	switch strings.ToLower(ext) {
	case ".wav":
		decodedStream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return fmt.Errorf("failed to decode WAV sound %s: %w", id, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return fmt.Errorf("failed to decode OGG sound %s: %w", id, err)
		}
		stream = decodedStream
	default:
		return fmt.Errorf("unsupported sound format: %s (supported: .wav, .ogg)", ext)
	}

	player, err := m.ctx.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("failed to create audio player for %s: %w", id, err)
	}

	m.players[id] = player
	return nil
}

// RegisterTone 注册一段合成提示音
// 无需音频资源文件，适合演示程序和默认控件音效
//
// 参数：
//   - id: 音效 ID
//   - freqHz: 频率（赫兹）
//   - durMs: 时长（毫秒）
func (m *Manager) RegisterTone(id string, freqHz, durMs float64) {
	pcm := Tone(m.ctx.SampleRate(), freqHz, durMs)
	m.players[id] = m.ctx.NewPlayerFromBytes(pcm)
}

// PlaySound 播放音效
// 实现 widgets.SoundPlayer。未注册的 ID 只记录警告，不影响控件逻辑
func (m *Manager) PlaySound(id string) {
	if !m.enabled {
		return
	}

	player, exists := m.players[id]
	if !exists {
		log.Printf("[Audio] Warning: Sound not found: %s", id)
		return
	}

	player.SetVolume(m.volume)

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[Audio] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
}

// SetEnabled 设置音效总开关
func (m *Manager) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// Enabled 返回音效总开关状态
func (m *Manager) Enabled() bool {
	return m.enabled
}

// SetVolume 设置音效音量
// 超出 0.0 ~ 1.0 的值会被钳制
func (m *Manager) SetVolume(volume float64) {
	m.volume = clampVolume(volume)
}

// Volume 返回当前音效音量
func (m *Manager) Volume() float64 {
	return m.volume
}

// Tone 合成一段正弦波提示音，返回 16 位小端双声道 PCM 数据
// 幅度随时间线性衰减，避免截止处的爆音
func Tone(sampleRate int, freqHz, durMs float64) []byte {
	samples := int(float64(sampleRate) * durMs / 1000)
	if samples < 0 {
		samples = 0
	}

	// 每个采样 4 字节：左右声道各 16 位
	pcm := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := 1 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*freqHz*t) * envelope
		s := int16(v * 0.3 * math.MaxInt16)

		pcm[i*4] = byte(s)
		pcm[i*4+1] = byte(s >> 8)
		pcm[i*4+2] = byte(s)
		pcm[i*4+3] = byte(s >> 8)
	}
	return pcm
}

// clampVolume 将音量值钳制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
