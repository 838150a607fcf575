package utils

import "math"

// 三角函数查找表
//
// 精灵动画使用 256 等分的圆周相位（0..255 对应 0..2π），
// 查表值为 Q8.8 定点数（256 = 1.0），生成时向零截断。
// Sin/Cos 的结果为 (amplitude * table[index]) >> 8（算术右移）。

// TrigSteps 一个完整圆周的相位步数
const TrigSteps = 256

// trigOne Q8.8 定点数中的 1.0
const trigOne = 256

var sineTable [TrigSteps]int

func init() {
	for i := 0; i < TrigSteps; i++ {
		sineTable[i] = int(math.Sin(float64(i)*2*math.Pi/TrigSteps) * trigOne)
	}
}

// Sin 查表正弦
//
// 参数：
//   - index: 相位索引，超出 0..255 的值按 256 取模（负数同样回绕）
//   - amplitude: 振幅
//
// 返回：
//   - int: (amplitude * sin(index)) >> 8
func Sin(index, amplitude int) int {
	return (amplitude * sineTable[index&(TrigSteps-1)]) >> 8
}

// Cos 查表余弦，等价于相位前移 64 的 Sin
func Cos(index, amplitude int) int {
	return (amplitude * sineTable[(index+TrigSteps/4)&(TrigSteps-1)]) >> 8
}

// SineTableValue 返回查找表原始值（Q8.8）
func SineTableValue(index int) int {
	return sineTable[index&(TrigSteps-1)]
}
