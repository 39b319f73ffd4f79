package postfix

import (
	"errors"

	"github.com/DjordjeVuckovic/rpn/internal/domain"
)

// Record builds the history entry of a conversion attempt from the result of Convert.
func Record(infix string, p Postfix, err error) domain.Conversion {
	if err == nil {
		return domain.Conversion{
			Infix:   infix,
			Postfix: p.String(),
			Tokens:  p.Values(),
			Status:  domain.ConversionSucceeded,
		}
	}

	failure := &domain.Failure{
		Kind:    string(KindOf(err)),
		Message: err.Error(),
	}
	var se *SyntaxError
	if errors.As(err, &se) {
		failure.Position = se.Pos
	}
	return domain.Conversion{
		Infix:   infix,
		Status:  domain.ConversionFailed,
		Failure: failure,
	}
}
