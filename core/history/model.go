package history

import "time"

// CheckRecord is one probe performed during a reconciliation run.
type CheckRecord struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"-"`
	RunID         string    `gorm:"column:run_id;type:varchar(36);index" json:"runId"`
	Row           int       `gorm:"column:row_index" json:"row"`
	Column        int       `gorm:"column:column_index" json:"column"`
	Domain        string    `gorm:"column:domain;type:varchar(253)" json:"domain"`
	Extension     string    `gorm:"column:extension;type:varchar(63)" json:"extension"`
	Name          string    `gorm:"column:name;type:varchar(255);index" json:"name"`
	Outcome       string    `gorm:"column:outcome;type:varchar(16)" json:"outcome"`
	Error         string    `gorm:"column:error;type:varchar(1024)" json:"error,omitempty"`
	ElapsedMillis int64     `gorm:"column:elapsed_ms" json:"elapsedMs"`
	CheckedAt     time.Time `gorm:"column:checked_at;index" json:"checkedAt"`
}

func (CheckRecord) TableName() string {
	return "domain_checks"
}

// Columns lists the columns Verify expects to find.
var Columns = []string{
	"id", "run_id", "row_index", "column_index", "domain", "extension",
	"name", "outcome", "error", "elapsed_ms", "checked_at",
}
