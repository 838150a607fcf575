// Package embedded 提供嵌入资源的统一访问接口
//
// //go:embed 只能嵌入当前包目录及其子目录的文件，
// 所以 embed.FS 变量声明在项目根目录（embed.go），由 main 在启动时传入。
// 测试可以传入 fstest.MapFS 或 os.DirFS。
//
// 使用前必须调用 Init()。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 调用 Init 之前访问资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 设置资源文件系统
//
// 参数：
//   - assets: 以 "assets/" 开头的路径从这里读取，可为 nil
//   - data: 以 "data/" 开头的路径从这里读取
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// resolve 标准化路径并按前缀选择文件系统
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	var fsys fs.FS
	switch {
	case strings.HasPrefix(path, "assets/"):
		fsys = assetsFS
	case strings.HasPrefix(path, "data/"):
		fsys = dataFS
	default:
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
	}
	if fsys == nil {
		return nil, "", fmt.Errorf("no file system registered for %s", path)
	}
	return fsys, path, nil
}

// Open 打开资源文件
func Open(path string) (fs.File, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取资源文件内容
//
// 参数：
//   - path: 以 "assets/" 或 "data/" 开头的路径
//
// 返回：
//   - []byte: 文件内容
//   - error: 未初始化、前缀未知或文件不存在
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配资源文件
func Glob(pattern string) ([]string, error) {
	fsys, name, err := resolve(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, name)
}

// ReadDir 读取资源目录
func ReadDir(path string) ([]fs.DirEntry, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(fsys, name)
}

// Sub 返回资源目录的子文件系统
func Sub(dir string) (fs.FS, error) {
	fsys, name, err := resolve(dir)
	if err != nil {
		return nil, err
	}
	return fs.Sub(fsys, name)
}

// Stat 获取资源文件信息
func Stat(path string) (fs.FileInfo, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.Stat(fsys, name)
}
