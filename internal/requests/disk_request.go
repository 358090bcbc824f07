package requests

import (
	"fmt"

	"github.com/markphelps/optional"

	"os-scheduler/internal/core"
)

type DiskScheduleRequest struct {
	Requests  []int           `json:"requests"`
	Head      int             `json:"head"`
	Direction optional.String `json:"direction"`
}

func (r *DiskScheduleRequest) Validate() error {
	if len(r.Requests) == 0 {
		return fmt.Errorf("%w: %w: at least one track request is required", core.ErrInvalidInput, core.ErrEmptyWorkload)
	}
	if r.Head < 0 {
		return fmt.Errorf("%w: head must be >= 0, got %d", core.ErrInvalidInput, r.Head)
	}
	for i, track := range r.Requests {
		if track < 0 {
			return fmt.Errorf("%w: request %d: track must be >= 0, got %d", core.ErrInvalidInput, i, track)
		}
	}
	return nil
}
