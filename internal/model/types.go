package model

import (
	"gorm.io/gorm"
)

// RemoteEntry 代表远端目录中的一个条目 (文件或文件夹)
// 由存储后端在列目录时统一归一化，后端私有字段在这里被丢弃。
type RemoteEntry struct {
	Name  string // 文件名 (不含路径)
	IsDir bool
	Size  int64  // 字节数，远端未提供时为 0
	Path  string // 完整远端路径
}

// EpisodeInfo 是从单个文件名解析出的季/集信息
type EpisodeInfo struct {
	Season       int    // 季号，默认 1
	Episode      int    // 集号，必须 >= 1
	Title        string // 可选的剧集标题
	OriginalName string // 原始文件名
	FilePath     string // 远端完整路径
	FileSize     int64
}

// RenameChange 是一条尚未执行的重命名
type RenameChange struct {
	OldName string
	NewName string
}

// RenameResult 记录一条重命名的执行结果，与输入的 RenameChange 一一对应
type RenameResult struct {
	OldName string
	NewName string
	Success bool
	Error   string // 失败原因，成功时为空
}

// RenameRecord 是写入本地 sqlite 的重命名历史
type RenameRecord struct {
	gorm.Model
	Storage   string // 后端类型 "alist" / "baidu"
	Directory string // 执行重命名的远端目录
	OldName   string
	NewName   string
	Success   bool
	Error     string
}
