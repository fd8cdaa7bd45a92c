package mdcommission

// 佣金计算。全程使用最小货币单位（分）和基点费率的整数运算，
// 不允许浮点参与金额计算。

// RateBpDenominator 基点分母，10000 基点 = 100%
const RateBpDenominator = 10000

// Calculate 计算单个行项目的平台佣金（分）。
// rateBp 为基点费率（1000 = 10.00%），舍入规则：对分四舍五入（round half up）。
func Calculate(totalPriceCents, rateBp int64) int64 {
	if totalPriceCents <= 0 || rateBp <= 0 {
		return 0
	}
	return (totalPriceCents*rateBp + RateBpDenominator/2) / RateBpDenominator
}

// PercentToBp 百分比费率转基点，percent 传整数百分数（10 表示 10%）
func PercentToBp(percent int64) int64 {
	return percent * 100
}
