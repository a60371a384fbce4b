package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	apperrors "github.com/agbru/fixcalc/internal/errors"
	"github.com/agbru/fixcalc/internal/orchestration"
)

func TestTUIProgressReporter_DrainsChannel(t *testing.T) {
	reporter := &TUIProgressReporter{ref: &programRef{}} // nil program: Send is a no-op

	ch := make(chan orchestration.ProgressUpdate, 10)
	for _, v := range []float64{0.25, 0.5, 0.75, 1} {
		ch <- orchestration.ProgressUpdate{CheckIndex: 0, Value: v}
	}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, 1, nil)
	wg.Wait()

	if len(ch) != 0 {
		t.Errorf("%d updates left in the channel", len(ch))
	}
}

func TestTUIProgressReporter_ZeroChecks(t *testing.T) {
	reporter := &TUIProgressReporter{ref: &programRef{}}

	ch := make(chan orchestration.ProgressUpdate, 5)
	ch <- orchestration.ProgressUpdate{CheckIndex: 0, Value: 0.5}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, 0, nil)
	wg.Wait()
}

func TestProgramRef_Send_Concurrent(t *testing.T) {
	ref := &programRef{}
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref.Send(ProgressDoneMsg{})
		}()
	}
	wg.Wait()
}

func TestTUIResultPresenter_HandleError(t *testing.T) {
	presenter := &TUIResultPresenter{ref: &programRef{}}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, apperrors.ExitSuccess},
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"mismatch", apperrors.MismatchError{Check: "fmadd", Got: "01", Want: "02"}, apperrors.ExitErrorMismatch},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := presenter.HandleError(tt.err, time.Second, nil); got != tt.want {
				t.Errorf("HandleError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}

	presenter.PresentCheckTable([]orchestration.CheckResult{{Name: "fmadd"}}, nil)
}
