package domain

import (
	"encoding/json"
	"time"
)

type CommandStatus string

const (
	CommandDraft      CommandStatus = "draft"
	CommandConfirmed  CommandStatus = "confirmed"
	CommandInProgress CommandStatus = "in_progress"
	CommandDelivered  CommandStatus = "delivered"
	CommandCanceled   CommandStatus = "canceled"
)

var CommandStatuses = []CommandStatus{
	CommandDraft,
	CommandConfirmed,
	CommandInProgress,
	CommandDelivered,
	CommandCanceled,
}

var commandTransitions = map[CommandStatus][]CommandStatus{
	CommandDraft:      {CommandConfirmed, CommandCanceled},
	CommandConfirmed:  {CommandInProgress, CommandCanceled},
	CommandInProgress: {CommandDelivered, CommandCanceled},
}

func (s CommandStatus) IsTerminal() bool {
	return s == CommandDelivered || s == CommandCanceled
}

func (s CommandStatus) CanTransitionTo(next CommandStatus) bool {
	for _, allowed := range commandTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

type Command struct {
	ID          string              `json:"id"`
	FranchiseID string              `json:"franchise_id"`
	UserID      string              `json:"user_id"`
	Status      CommandStatus       `json:"status"`
	Items       []CommandIngredient `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (c Command) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Quantity * item.UnitPrice
	}

	return total
}

// MarshalJSON adds the derived total to the serialized command.
func (c Command) MarshalJSON() ([]byte, error) {
	type command Command

	return json.Marshal(struct {
		command
		Total float64 `json:"total"`
	}{command(c), c.Total()})
}

type CommandIngredient struct {
	ID           string  `json:"id"`
	CommandID    string  `json:"command_id"`
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
}

// CommandInput is a command as submitted by a client. Items without a unit
// price take the ingredient's current price.
type CommandInput struct {
	FranchiseID string
	Status      CommandStatus
	Items       []CommandItemInput
}

type CommandItemInput struct {
	IngredientID string
	Quantity     float64
	UnitPrice    *float64
}

type CommandFilter struct {
	FranchiseID string
	Status      CommandStatus
}

// CommandStatusEvent is published whenever a command changes status.
type CommandStatusEvent struct {
	CommandID   string        `json:"command_id"`
	FranchiseID string        `json:"franchise_id"`
	Status      CommandStatus `json:"status"`
	At          time.Time     `json:"at"`
}
