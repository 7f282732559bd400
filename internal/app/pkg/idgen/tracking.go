package idgen

import (
	"fmt"
	"sync"
	"time"
)

// TrackingNumberGenerator 运单号生成器
// 运单号格式: 前缀(2位) + 日期(8位) + 机器ID(2位) + 序列号(5位)
// 例如: CD20240101 + 01 + 00007 → CD202401010100007，日期内序列递增
type TrackingNumberGenerator struct {
	mu        sync.Mutex
	prefix    string
	machineID int64 // 机器ID (0-99)
	sequence  int64 // 序列号 (0-99999)
	lastDate  string
}

const (
	maxMachineID = 99
	maxSequence  = 99999
)

// NewTrackingNumberGenerator 创建运单号生成器
// machineID: 机器ID，范围 0-99
func NewTrackingNumberGenerator(prefix string, machineID int64) *TrackingNumberGenerator {
	if machineID < 0 || machineID > maxMachineID {
		machineID = 0
	}
	if prefix == "" {
		prefix = "CD"
	}

	return &TrackingNumberGenerator{
		prefix:    prefix,
		machineID: machineID,
	}
}

// Next 生成下一个运单号
func (g *TrackingNumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	date := time.Now().Format("20060102")

	if date == g.lastDate {
		// 同一天内，序列号递增
		g.sequence = (g.sequence + 1) % (maxSequence + 1)
	} else {
		// 新的一天，重置序列号
		g.sequence = 0
		g.lastDate = date
	}

	return fmt.Sprintf("%s%s%02d%05d", g.prefix, date, g.machineID, g.sequence)
}

// 全局默认生成器（机器ID为1）
var defaultGenerator = NewTrackingNumberGenerator("CD", 1)

// NextTrackingNumber 生成运单号（使用默认生成器）
func NextTrackingNumber() string {
	return defaultGenerator.Next()
}
