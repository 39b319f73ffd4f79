package dto

import (
	"github.com/DjordjeVuckovic/rpn/internal/domain"
	"github.com/DjordjeVuckovic/rpn/pkg/pagination"
)

func FromConversion(c domain.Conversion) Conversion {
	out := Conversion{
		ID:        c.ID,
		Infix:     c.Infix,
		Postfix:   c.Postfix,
		Tokens:    c.Tokens,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
	if c.Failure != nil {
		pos := c.Failure.Position
		out.Error = c.Failure.Message
		out.Kind = c.Failure.Kind
		out.Position = &pos
	}
	return out
}

func FromConversionPage(res *pagination.OffsetResult[domain.Conversion]) ConversionPage {
	items := make([]Conversion, len(res.Items))
	for i, c := range res.Items {
		items[i] = FromConversion(c)
	}
	return ConversionPage{
		Items:   items,
		Total:   res.Total,
		Page:    res.Page,
		Size:    res.Size,
		HasMore: res.HasMore,
	}
}
