package history

import (
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/xiaozhuazi/tvrename/internal/model"
)

// Store 把每批重命名结果写入本地 sqlite，便于事后追溯
type Store struct {
	db *gorm.DB
}

// Open 打开 (必要时创建) 历史库并迁移表结构
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.RenameRecord{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Record 记录一批执行结果，storageName 是后端类型，dir 是执行目录
func (s *Store) Record(storageName, dir string, results []model.RenameResult) error {
	if len(results) == 0 {
		return nil
	}

	records := make([]model.RenameRecord, 0, len(results))
	for _, r := range results {
		records = append(records, model.RenameRecord{
			Storage:   storageName,
			Directory: dir,
			OldName:   r.OldName,
			NewName:   r.NewName,
			Success:   r.Success,
			Error:     r.Error,
		})
	}
	return s.db.Create(&records).Error
}

// Recent 返回最近 n 条历史，新的在前
func (s *Store) Recent(n int) ([]model.RenameRecord, error) {
	var records []model.RenameRecord
	err := s.db.Order("id desc").Limit(n).Find(&records).Error
	return records, err
}
