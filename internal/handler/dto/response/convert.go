package response

import (
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money leaves the API as a fixed two-decimal string.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
		{
			SrcType: &decimal.Decimal{},
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				d, _ := src.(*decimal.Decimal)
				if d == nil {
					return (*string)(nil), nil
				}
				s := d.StringFixed(2)
				return &s, nil
			},
		},
	},
}

func convert[T any](src any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOptions); err != nil {
		return nil, err
	}
	return &dst, nil
}

func convertAll[T, S any](items []*S) ([]*T, error) {
	out := make([]*T, 0, len(items))
	for _, it := range items {
		converted, err := convert[T](it)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

type ListResponse[T any] struct {
	Items []*T            `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
