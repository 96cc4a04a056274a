package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStatusChanged is returned when the command left the expected status
// between read and write.
var ErrStatusChanged = errors.New("command status changed concurrently")

const statusDelivered = "delivered"

type Command struct {
	Base

	FranchiseID string              `gorm:"type:uuid;not null;index"`
	Franchise   Franchise           `gorm:"constraint:OnDelete:CASCADE"`
	UserID      string              `gorm:"type:uuid;not null;index"`
	Status      string              `gorm:"not null;index"`
	Items       []CommandIngredient `gorm:"constraint:OnDelete:CASCADE"`
}

type CommandIngredient struct {
	Base

	CommandID    string     `gorm:"type:uuid;not null;index"`
	IngredientID string     `gorm:"type:uuid;not null"`
	Ingredient   Ingredient `gorm:"constraint:OnDelete:RESTRICT"`
	Quantity     float64    `gorm:"not null"`
	UnitPrice    float64    `gorm:"not null;default:0"`
}

type CommandFilter struct {
	FranchiseID string
	Status      string
}

type CommandDAO struct {
	db *gorm.DB
}

func NewCommandDAO(db *gorm.DB) *CommandDAO {
	return &CommandDAO{
		db: db,
	}
}

// InsertWithItems writes the command and all its items atomically. Any item
// failing a constraint rolls the whole command back.
func (d *CommandDAO) InsertWithItems(ctx context.Context, command Command) (Command, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := command.Items
		command.Items = nil
		if err := tx.Omit(clause.Associations).Create(&command).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].CommandID = command.ID
			if err := tx.Omit(clause.Associations).Create(&items[i]).Error; err != nil {
				return err
			}
		}
		command.Items = items

		return nil
	})
	if err != nil {
		return Command{}, err
	}

	return command, nil
}

func (d *CommandDAO) FindByID(ctx context.Context, id string) (Command, error) {
	return first[Command](d.db.WithContext(ctx).Preload("Items"), "id = ?", id)
}

func (d *CommandDAO) FindAll(ctx context.Context, filter CommandFilter) ([]Command, error) {
	query := d.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if filter.FranchiseID != "" {
		query = query.Where("franchise_id = ?", filter.FranchiseID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var commands []Command
	if err := query.Find(&commands).Error; err != nil {
		return nil, err
	}

	return commands, nil
}

// UpdateStatus moves the command from one status to the next. Reaching
// "delivered" adds every item quantity to the franchise stock in the same
// transaction.
func (d *CommandDAO) UpdateStatus(ctx context.Context, id, from, to string) (Command, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Command{}).Where("id = ? AND status = ?", id, from).Update("status", to)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStatusChanged
		}

		if to != statusDelivered {
			return nil
		}

		command, err := first[Command](tx.Preload("Items"), "id = ?", id)
		if err != nil {
			return err
		}

		quantities := make(map[string]float64, len(command.Items))
		for _, item := range command.Items {
			quantities[item.IngredientID] += item.Quantity
		}

		return addStock(tx, command.FranchiseID, quantities)
	})
	if err != nil {
		return Command{}, err
	}

	return d.FindByID(ctx, id)
}

func (d *CommandDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("command_id = ?", id).Delete(&CommandIngredient{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Command{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}
