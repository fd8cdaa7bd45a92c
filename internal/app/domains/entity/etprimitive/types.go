package etprimitive

// 基础类型和通用值对象

// Pagination 分页参数
type Pagination struct {
	Limit  int
	Offset int
}

// Normalize 纠正非法分页参数，limit 上限 100
func (p Pagination) Normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
