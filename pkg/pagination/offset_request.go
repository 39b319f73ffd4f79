package pagination

import (
	"errors"
	"fmt"
	"math"
)

// PageMaxNumber is the largest page whose offset fits in an int at PageMaxSize.
const PageMaxNumber = math.MaxInt/PageMaxSize + 1

var ErrPageOutOfRange = errors.New("page out of range")

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Validate normalizes offset pagination parameters: a non-positive page
// becomes 1 and the size is clamped to (0, PageMaxSize]. A page above
// PageMaxNumber is rejected with ErrPageOutOfRange.
func (r *OffsetRequest) Validate() error {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	if r.Page > PageMaxNumber {
		return fmt.Errorf("%w: %d exceeds %d", ErrPageOutOfRange, r.Page, PageMaxNumber)
	}
	return nil
}

// Offset is the number of items preceding the requested page. It is only
// meaningful after a successful Validate.
func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
