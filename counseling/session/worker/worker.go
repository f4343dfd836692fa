package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/counsel/counseling/session"
	"github.com/Abraxas-365/counsel/counseling/session/sessionsrv"
	"github.com/Abraxas-365/counsel/pkg/logx"
)

// ExtractionWorker drains the resume extraction queue and writes the
// extracted text into the owning session's resume_keywords slot.
type ExtractionWorker struct {
	service *sessionsrv.Service
	queue   session.ExtractionQueue
	workers int
}

func NewExtractionWorker(service *sessionsrv.Service, queue session.ExtractionQueue, workers int) *ExtractionWorker {
	return &ExtractionWorker{
		service: service,
		queue:   queue,
		workers: workers,
	}
}

func (w *ExtractionWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d resume extraction workers", w.workers)

	for i := 0; i < w.workers; i++ {
		go w.processJobs(ctx, i)
	}
}

func (w *ExtractionWorker) processJobs(ctx context.Context, workerID int) {
	logx.Infof("Extraction worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Extraction worker %d stopping", workerID)
			return
		default:
			data, err := w.queue.Dequeue(ctx, 5*time.Second)
			if err != nil {
				logx.Errorf("Extraction worker %d dequeue error: %v", workerID, err)
				continue
			}

			// Nil data means the blocking pop timed out with no jobs.
			if len(data) == 0 {
				continue
			}

			var job session.ExtractionJob
			if err := json.Unmarshal(data, &job); err != nil {
				logx.Errorf("Extraction worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			logx.Infof("Extraction worker %d processing job %s for session %s", workerID, job.ID, job.SessionID)
			if err := w.service.ProcessExtractionJob(ctx, &job); err != nil {
				logx.Errorf("Extraction worker %d job %s failed: %v", workerID, job.ID, err)
			}
		}
	}
}
