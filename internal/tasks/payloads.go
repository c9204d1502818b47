package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypeExportSite = "export:site"
)

// ExportSitePayload 描述静态导出任务所需的最小信息。
type ExportSitePayload struct {
	PortfolioID   uint   `json:"portfolio_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewExportSiteTask 构造一个新的站点导出任务。
func NewExportSiteTask(id uint, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ExportSitePayload{
		PortfolioID:   id,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeExportSite, payload), nil
}
