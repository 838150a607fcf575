package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// 仿射参数约定：
//   - xScale/yScale 为 Q8.8 定点数，256 = 原始大小；数值越大精灵显示越小（纹理坐标缩放）
//   - 负的 xScale 表示水平翻转
//   - rotation 为 16 位角度，65536 = 一整圈，正值为逆时针

// AffineIdentityScale 单位缩放
const AffineIdentityScale = 256

// ComposeAffine 根据缩放与旋转参数构建渲染用的变换矩阵
//
// 返回的 GeoM 以精灵中心为原点，调用方需要在其后追加平移。
//
// 参数：
//   - xScale: 水平缩放（Q8.8，纹理空间）
//   - yScale: 垂直缩放（Q8.8，纹理空间）
//   - rotation: 旋转角度（65536 = 2π）
//
// 返回：
//   - ebiten.GeoM: 纹理到屏幕的变换
func ComposeAffine(xScale, yScale int16, rotation uint16) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(inverseScale(xScale), inverseScale(yScale))
	// 屏幕坐标 y 轴向下，逆时针需要取负角度
	m.Rotate(-RotationToRadians(rotation))
	return m
}

// RotationToRadians 将 16 位角度转换为弧度
func RotationToRadians(rotation uint16) float64 {
	return float64(rotation) * 2 * math.Pi / 65536
}

// inverseScale 纹理空间缩放转换为屏幕空间缩放
// 缩放为 0 时精灵在硬件上会无限放大，这里按 1 处理
func inverseScale(scale int16) float64 {
	if scale == 0 {
		scale = 1
	}
	return AffineIdentityScale / float64(scale)
}

// CenterToCornerVec 计算精灵中心到左上角的偏移
//
// 参数：
//   - width, height: 精灵尺寸（像素）
//   - doubleSize: 是否处于双倍尺寸仿射模式（渲染区域扩大一倍）
//
// 返回：
//   - x, y: 中心到左上角的偏移（负值）
func CenterToCornerVec(width, height int, doubleSize bool) (int, int) {
	if doubleSize {
		return -width, -height
	}
	return -width / 2, -height / 2
}
