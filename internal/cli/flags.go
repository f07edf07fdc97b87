package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hive/internal/domain"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*timerModeFlag)(nil)
	_ pflag.Value = (*intensityFlag)(nil)
)

// timerModeFlag accepts cell, breather or refuel in any case.
type timerModeFlag struct{ mode domain.TimerMode }

func (f *timerModeFlag) String() string { return string(f.mode) }
func (f *timerModeFlag) Type() string   { return "mode" }

func (f *timerModeFlag) Set(s string) error {
	m, err := parseTimerMode(s)
	if err != nil {
		return err
	}
	f.mode = m
	return nil
}

func parseTimerMode(s string) (domain.TimerMode, error) {
	switch m := domain.TimerMode(strings.ToLower(s)); m {
	case domain.TimerCell, domain.TimerBreather, domain.TimerRefuel:
		return m, nil
	default:
		return "", fmt.Errorf("unknown timer mode %q (want cell, breather or refuel)", s)
	}
}

// intensityFlag accepts GLIDER, WORKER_BEE or HERO_MODE in any case.
type intensityFlag struct{ mode domain.IntensityMode }

func (f *intensityFlag) String() string { return string(f.mode) }
func (f *intensityFlag) Type() string   { return "intensity" }

func (f *intensityFlag) Set(s string) error {
	m := domain.IntensityMode(strings.ToUpper(strings.TrimSpace(s)))
	if !domain.ValidIntensityModes[m] {
		return fmt.Errorf("unknown intensity %q (want GLIDER, WORKER_BEE or HERO_MODE)", s)
	}
	f.mode = m
	return nil
}
