// Copyright 2025 mkulima
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// progression 履约主链路的固定顺序, 同时用于进度时间线渲染
var progression = []Status{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal 终态不再接受任何状态写入
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) index() int {
	for i, st := range progression {
		if st == s {
			return i
		}
	}
	return -1
}

// CanTransitionTo 状态机唯一的合法性判定: 主链路只允许前进一步,
// 非终态可以直接取消
func (s Status) CanTransitionTo(next Status) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return next.index() == s.index()+1
}

type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepUpcoming  StepState = "upcoming"
)

type TimelineStep struct {
	Status Status
	State  StepState
}

// Timeline 按当前状态推导进度时间线。
// 已取消的订单只渲染 [pending, cancelled], 不保留取消前走到哪一步
func Timeline(current Status) []TimelineStep {
	if current == StatusCancelled {
		return []TimelineStep{
			{Status: StatusPending, State: StepCompleted},
			{Status: StatusCancelled, State: StepCurrent},
		}
	}
	cur := current.index()
	steps := make([]TimelineStep, 0, len(progression))
	for i, st := range progression {
		state := StepUpcoming
		switch {
		case i < cur:
			state = StepCompleted
		case i == cur:
			state = StepCurrent
		}
		steps = append(steps, TimelineStep{Status: st, State: state})
	}
	return steps
}

// StatusMeta 状态的展示元数据, 徽章和时间线共用这一张表, 不落库
type StatusMeta struct {
	Label string
	Color string
	Icon  string
}

var statusMetas = map[Status]StatusMeta{
	StatusPending:    {Label: "Order Awaiting Confirmation", Color: "#F59E0B", Icon: "clock"},
	StatusConfirmed:  {Label: "Order Confirmed", Color: "#22C55E", Icon: "check-circle"},
	StatusProcessing: {Label: "Order Being Prepared", Color: "#3B82F6", Icon: "package"},
	StatusShipped:    {Label: "Order Out for Delivery", Color: "#8B5CF6", Icon: "truck"},
	StatusDelivered:  {Label: "Order Delivered", Color: "#16A34A", Icon: "home"},
	StatusCancelled:  {Label: "Order Cancelled", Color: "#EF4444", Icon: "x-circle"},
}

func (s Status) Meta() StatusMeta {
	if m, ok := statusMetas[s]; ok {
		return m
	}
	return StatusMeta{Label: "Order Status", Color: "#525252", Icon: "file-text"}
}
