package model

// Counter holds one row per named sequence in the counters table.
// Mutated only by the sequence allocator.
type Counter struct {
	Name          string `gorm:"primaryKey"`
	SequenceValue int64  `gorm:"not null;default:0"`
}

func (Counter) TableName() string { return "counters" }
