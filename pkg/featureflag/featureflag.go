// Package featureflag 持久化全局功能开关（目前只有 ia_enabled）。
//
// 开关以单个 JSON 对象保存在固定路径：{"ia_enabled": true}。
// 读取失败时返回默认值 DefaultIAEnabled，写入为整体覆盖。
package featureflag

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	// DefaultIAEnabled 文件缺失或无法读取时的开关值
	DefaultIAEnabled = true

	keyIAEnabled = "ia_enabled"
)

// Provider 功能开关读写接口
type Provider interface {
	// IAEnabled 返回当前开关值；出错时仍返回 DefaultIAEnabled，并附带错误
	IAEnabled(ctx context.Context) (bool, error)
	// SetIAEnabled 整体覆盖持久化文件
	SetIAEnabled(ctx context.Context, enabled bool) error
}

// FileProvider 基于本地 JSON 文件的 Provider
type FileProvider struct {
	path string
	mu   sync.Mutex // 串行化写入；并发读写仍为 last-write-wins
}

// NewFileProvider 创建 FileProvider
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Path 返回持久化文件路径
func (p *FileProvider) Path() string {
	return p.path
}

// IAEnabled 读取开关；文件不存在视为首次启动，返回默认值且不报错
func (p *FileProvider) IAEnabled(_ context.Context) (bool, error) {
	v := viper.New()
	v.SetConfigFile(p.path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultIAEnabled, nil
		}
		return DefaultIAEnabled, fmt.Errorf("读取 IA 开关失败: %w", err)
	}

	if !v.IsSet(keyIAEnabled) {
		return DefaultIAEnabled, nil
	}
	return v.GetBool(keyIAEnabled), nil
}

// SetIAEnabled 先写临时文件再原子替换，避免读到半截内容
func (p *FileProvider) SetIAEnabled(_ context.Context, enabled bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建 IA 开关目录失败: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set(keyIAEnabled, enabled)

	tmp := strings.TrimSuffix(p.path, filepath.Ext(p.path)) + ".tmp.json"
	if err := v.WriteConfigAs(tmp); err != nil {
		return fmt.Errorf("写入 IA 开关失败: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("替换 IA 开关文件失败: %w", err)
	}
	return nil
}
