package monanim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAnimationID 动画编号不在目录范围内
	ErrInvalidAnimationID = errors.New("invalid animation id")
	// ErrInvalidBackAnimSet 背视动画组编号未定义
	ErrInvalidBackAnimSet = errors.New("invalid back animation set")
	// ErrInvalidNature 性格编号未定义
	ErrInvalidNature = errors.New("invalid nature")
	// ErrUnknownAnimName 配置里出现了目录中没有的动画名
	ErrUnknownAnimName = errors.New("unknown animation name")
)

// InvalidAnimationIDError 启动动画时传入了越界编号
type InvalidAnimationIDError struct {
	ID AnimID
}

func (e *InvalidAnimationIDError) Error() string {
	return fmt.Sprintf("animation id %d out of range [0, %d)", int(e.ID), int(AnimCount))
}

// Unwrap 让 errors.Is(err, ErrInvalidAnimationID) 成立
func (e *InvalidAnimationIDError) Unwrap() error {
	return ErrInvalidAnimationID
}
