package repository

import "gorm.io/gorm"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type Page struct {
	Page  int
	Limit int
}

func (p Page) normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

func (p Page) Offset() int {
	p = p.normalize()
	return (p.Page - 1) * p.Limit
}

type PageResult[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

func (r PageResult[T]) TotalPages() int64 {
	if r.Limit == 0 {
		return 0
	}
	return (r.Total + int64(r.Limit) - 1) / int64(r.Limit)
}

// paginate counts the filtered query then fetches one page of it. Scopes apply to the
// fetch only, so selects and preloads never leak into the count.
func paginate[T any](query *gorm.DB, page Page, order string, scopes ...func(*gorm.DB) *gorm.DB) (PageResult[T], error) {
	page = page.normalize()
	result := PageResult[T]{Items: []T{}, Page: page.Page, Limit: page.Limit}

	if err := query.Session(&gorm.Session{}).Count(&result.Total).Error; err != nil {
		return result, err
	}
	if err := query.Session(&gorm.Session{}).Scopes(scopes...).Order(order).Offset(page.Offset()).Limit(page.Limit).Find(&result.Items).Error; err != nil {
		return result, err
	}
	return result, nil
}
