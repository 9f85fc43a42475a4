package requests

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"gopkg.in/yaml.v3"
)

// Process is a caller supplied process descriptor. Ids are not required to be unique.
type Process struct {
	ID        string `json:"id" yaml:"id" valid:"required"`
	BurstTime int    `json:"burst_time" yaml:"burst_time"`
	Priority  int    `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Processes []Process `json:"processes" yaml:"processes"`
}

// rawProcess accepts numbers and numeric strings alike.
type rawProcess struct {
	ID        any `json:"id" yaml:"id"`
	BurstTime any `json:"burst_time" yaml:"burst_time"`
	Priority  any `json:"priority" yaml:"priority"`
}

func (raw rawProcess) process() Process {
	return Process{
		ID:        coerceID(raw.ID),
		BurstTime: coerceInt(raw.BurstTime),
		Priority:  coerceInt(raw.Priority),
	}
}

// UnmarshalJSON coerces unparsable numeric fields to 0 instead of failing.
func (p *Process) UnmarshalJSON(data []byte) error {
	var raw rawProcess
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = raw.process()
	return nil
}

func (p *Process) UnmarshalYAML(value *yaml.Node) error {
	var raw rawProcess
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*p = raw.process()
	return nil
}

func coerceID(value any) string {
	switch id := value.(type) {
	case nil:
		return ""
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

func coerceInt(value any) int {
	switch v := value.(type) {
	case nil:
		return 0
	case string:
		return leadingInt(v)
	default:
		n, err := govalidator.ToInt(v)
		if err != nil {
			return 0
		}
		return int(n)
	}
}

// leadingInt parses the optionally signed run of digits at the start of s, ignoring
// leading whitespace and anything after the digits: "12abc" is 12, "5.9" is 5, "abc" is 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// ParseBatch reads a YAML or JSON document holding either {processes: [...]} or a bare list.
func ParseBatch(data []byte) (ScheduleRequests, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return ScheduleRequests{}, fmt.Errorf("parse batch: %w", err)
	}

	// empty document
	if len(document.Content) == 0 {
		return ScheduleRequests{Processes: []Process{}}, nil
	}

	root := document.Content[0]

	var request ScheduleRequests
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&request.Processes); err != nil {
			return ScheduleRequests{}, fmt.Errorf("decode process list: %w", err)
		}
	case yaml.MappingNode:
		if err := root.Decode(&request); err != nil {
			return ScheduleRequests{}, fmt.Errorf("decode schedule request: %w", err)
		}
	default:
		return ScheduleRequests{},
			goerrors.ErrValidation{
				Caller: "ParseBatch",
				Issue: goerrors.ErrInvalidInput{
					InputName: "batch document",
				},
			}
	}

	if request.Processes == nil {
		request.Processes = []Process{}
	}

	return request, nil
}

// IsValid applies the strict boundary rules: every process needs an id and a positive burst time.
func (p *Process) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(p); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Scheduler",
			Caller:      "IsValid - Process",
			Issue:       errValidation,
		}
	}

	if len(strings.TrimSpace(p.ID)) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Process",
			Issue: goerrors.ErrNilInput{
				InputName: "ID",
			},
		}
	}

	if p.BurstTime < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Process",
			Issue: goerrors.ErrNegativeInput{
				InputName: "BurstTime",
			},
		}
	}

	if p.BurstTime == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Process",
			Issue: goerrors.ErrInvalidInput{
				InputName: "BurstTime",
			},
		}
	}

	return nil
}

// IsValid applies Process.IsValid to every process and rejects burst time totals
// the scheduling clock cannot represent.
func (r *ScheduleRequests) IsValid() error {
	var totalBurstTime int

	for i := range r.Processes {
		if err := r.Processes[i].IsValid(); err != nil {
			return fmt.Errorf("process %d: %w", i, err)
		}

		if r.Processes[i].BurstTime > math.MaxInt-totalBurstTime {
			return goerrors.ErrValidation{
				Caller: "IsValid - ScheduleRequests",
				Issue: goerrors.ErrInvalidInput{
					InputName: "total BurstTime",
				},
			}
		}
		totalBurstTime += r.Processes[i].BurstTime
	}

	return nil
}
