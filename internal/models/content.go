package models

import (
	"encoding/json"
	"fmt"

	"github.com/gkxornjs/Uokjeryeok/internal/timeline"
)

// Content documents are stored as opaque JSON and decoded into one of four
// typed shapes. The shape is chosen by the granularity that queried the
// record, never by sniffing which fields happen to be present.

type QuickNote struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Order     int    `json:"order"`
}

type Habit struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Goal struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Theme string `json:"theme"`
	Order int    `json:"order"`
}

type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Completed   bool   `json:"completed"`
	AssignedDay string `json:"assignedDay,omitempty"`
}

type AreaGoal struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Category  string `json:"category"`
}

type Feedback struct {
	Evaluation string `json:"evaluation"`
	Praise     string `json:"praise"`
	Criticism  string `json:"criticism"`
	Insights   string `json:"insights"`
}

type DailyContent struct {
	DailyMotto  string           `json:"dailyMotto,omitempty"`
	QuickNotes  []QuickNote      `json:"quickNotes,omitempty"`
	TimeBlocks  []timeline.Block `json:"timeBlocks,omitempty"`
	Checklist   []ChecklistItem  `json:"checklist,omitempty"`
	Habits      []Habit          `json:"habits,omitempty"`
	Diary       string           `json:"diary,omitempty"`
	Praise      string           `json:"praise,omitempty"`
	Reflection  string           `json:"reflection,omitempty"`
	Inspiration string           `json:"inspiration,omitempty"`
}

type WeeklyContent struct {
	Goals      []Goal           `json:"goals"`
	TimeBlocks []timeline.Block `json:"timeBlocks"`
	QuickMemos []string         `json:"quickMemos"`
	Todos      []Todo           `json:"todos"`
	Feedback   Feedback         `json:"feedback"`
}

type MonthlyContent struct {
	MonthlyMotto string     `json:"monthlyMotto"`
	Goals        []Goal     `json:"goals"`
	QuickMemos   []string   `json:"quickMemos"`
	Todos        []Todo     `json:"todos"`
	AreaGoals    []AreaGoal `json:"areaGoals"`
	Feedback     Feedback   `json:"feedback"`
}

type YearlyContent struct {
	YearlyMotto string     `json:"yearlyMotto"`
	Goals       []Goal     `json:"goals"`
	QuickMemos  []string   `json:"quickMemos"`
	Todos       []Todo     `json:"todos"`
	AreaGoals   []AreaGoal `json:"areaGoals"`
	Feedback    Feedback   `json:"feedback"`
}

// DecodeContent unmarshals raw content into the document shape for the given
// granularity. Empty or null content yields the zero document of that shape.
// Daily documents get their time blocks de-duplicated on the way in, so
// legacy duplicates in storage never reach the caller.
func DecodeContent(granularity Granularity, raw json.RawMessage) (any, error) {
	empty := len(raw) == 0 || string(raw) == "null"

	switch granularity {
	case GranularityDaily:
		content := DailyContent{}
		if !empty {
			if err := json.Unmarshal(raw, &content); err != nil {
				return nil, fmt.Errorf("decode daily content: %w", err)
			}
		}
		content.TimeBlocks = timeline.Dedup(content.TimeBlocks)
		return content, nil
	case GranularityWeekly:
		content := WeeklyContent{}
		if !empty {
			if err := json.Unmarshal(raw, &content); err != nil {
				return nil, fmt.Errorf("decode weekly content: %w", err)
			}
		}
		content.TimeBlocks = timeline.Dedup(content.TimeBlocks)
		return content, nil
	case GranularityMonthly:
		content := MonthlyContent{}
		if !empty {
			if err := json.Unmarshal(raw, &content); err != nil {
				return nil, fmt.Errorf("decode monthly content: %w", err)
			}
		}
		return content, nil
	case GranularityYearly:
		content := YearlyContent{}
		if !empty {
			if err := json.Unmarshal(raw, &content); err != nil {
				return nil, fmt.Errorf("decode yearly content: %w", err)
			}
		}
		return content, nil
	}
	return nil, fmt.Errorf("unknown granularity %q", granularity)
}
