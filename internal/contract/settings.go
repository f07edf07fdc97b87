package contract

import (
	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/planner"
)

type Settings struct {
	IntensityMode domain.IntensityMode `json:"intensityMode"`
	WorkStartTime string               `json:"workStartTime"`
	WorkEndTime   string               `json:"workEndTime"`
	DailyTarget   int                  `json:"dailyTarget"`
}

type UpdateSettingsRequest struct {
	UserID        string                `json:"-"`
	IntensityMode *domain.IntensityMode `json:"intensityMode,omitempty"`
	WorkStartTime *string               `json:"workStartTime,omitempty"`
	WorkEndTime   *string               `json:"workEndTime,omitempty"`
}

func (r UpdateSettingsRequest) Validate() error {
	if r.IntensityMode != nil && !domain.ValidIntensityModes[*r.IntensityMode] {
		return Invalid("unknown intensity mode %q", *r.IntensityMode)
	}
	for _, c := range []*string{r.WorkStartTime, r.WorkEndTime} {
		if c == nil {
			continue
		}
		if _, err := planner.ParseClock(*c); err != nil {
			return Invalid("%v", err)
		}
	}
	return nil
}
