package main

import (
	"placement-workers/internal/common/camunda"
	"placement-workers/internal/common/config"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/match"

	ma "placement-workers/internal/workers/data-access/manage-announcement"
	me "placement-workers/internal/workers/data-access/manage-employer"
	qe "placement-workers/internal/workers/data-access/query-elasticsearch"
	qp "placement-workers/internal/workers/data-access/query-postgresql"

	rc "placement-workers/internal/workers/assistant/respond-chat"
	asg "placement-workers/internal/workers/career/analyze-skill-gap"
	pcp "placement-workers/internal/workers/career/predict-career-path"
	co "placement-workers/internal/workers/offers/compare-offers"
	cr "placement-workers/internal/workers/readiness/calculate-readiness"
	ar "placement-workers/internal/workers/resume/analyze-resume"

	ate "placement-workers/internal/workers/placement/apply-to-employer"
	gd "placement-workers/internal/workers/placement/get-dashboard"
	ms "placement-workers/internal/workers/placement/manage-session"
	sn "placement-workers/internal/workers/placement/send-notification"
	tpt "placement-workers/internal/workers/placement/toggle-prep-task"
	uas "placement-workers/internal/workers/placement/update-application-status"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.uber.org/zap"
)

type registrar struct {
	client  zbc.Client
	cfg     *config.Config
	zapLog  *zap.Logger
	workers []*camunda.Worker
}

// start opens a job worker for taskType unless it is disabled in config.
func (r *registrar) start(taskType string, handler camunda.JobHandler) {
	wcfg := config.GetWorkerConfig(r.cfg, taskType)
	if !wcfg.Enabled {
		r.zapLog.Info("worker disabled", zap.String("taskType", taskType))
		return
	}
	r.workers = append(r.workers, camunda.NewWorker(r.client, camunda.WorkerOptions{
		TaskType:      taskType,
		MaxJobsActive: wcfg.MaxJobsActive,
		Timeout:       config.GetDuration(wcfg.Timeout),
	}, handler, r.zapLog))
}

func (r *registrar) wcfg(taskType string) config.WorkerConfig {
	return config.GetWorkerConfig(r.cfg, taskType)
}

func registerWorkers(client zbc.Client, cfg *config.Config, b *backends, log logger.Logger, zapLog *zap.Logger) []*camunda.Worker {
	r := &registrar{client: client, cfg: cfg, zapLog: zapLog}
	matcher := match.NewMatcher(cfg.Matching.Mode)

	// Scoring
	r.start(pcp.TaskType, pcp.NewHandler(pcp.LoadConfig(r.wcfg(pcp.TaskType)), matcher, log))
	r.start(asg.TaskType, asg.NewHandler(asg.LoadConfig(r.wcfg(asg.TaskType)), matcher, b.catalog, b.sessions, log))
	r.start(co.TaskType, co.NewHandler(co.LoadConfig(r.wcfg(co.TaskType)), log))
	r.start(ar.TaskType, ar.NewHandler(ar.LoadConfig(r.wcfg(ar.TaskType)), log))
	r.start(cr.TaskType, cr.NewHandler(cr.LoadConfig(r.wcfg(cr.TaskType)), matcher, b.sessions, log))
	r.start(rc.TaskType, rc.NewHandler(rc.LoadConfig(r.wcfg(rc.TaskType)), b.catalog, log))

	// Session state
	r.start(ms.TaskType, ms.NewHandler(ms.LoadConfig(r.wcfg(ms.TaskType)), b.sessions, log))
	r.start(ate.TaskType, ate.NewHandler(ate.LoadConfig(r.wcfg(ate.TaskType)), b.sessions, b.catalog, log))
	r.start(uas.TaskType, uas.NewHandler(uas.LoadConfig(r.wcfg(uas.TaskType)), b.sessions, log))
	r.start(tpt.TaskType, tpt.NewHandler(tpt.LoadConfig(r.wcfg(tpt.TaskType)), b.sessions, log))
	r.start(gd.TaskType, gd.NewHandler(gd.LoadConfig(r.wcfg(gd.TaskType)), b.sessions, b.catalog, b.board, log))
	r.start(sn.TaskType, sn.NewHandler(sn.LoadConfig(r.wcfg(sn.TaskType)), b.sessions, b.notifier, log))

	// Data access
	r.start(qp.TaskType, qp.NewHandler(qp.LoadConfig(r.wcfg(qp.TaskType)), b.catalog, log))
	r.start(ma.TaskType, ma.NewHandler(ma.LoadConfig(r.wcfg(ma.TaskType)), b.board, log))
	if b.index != nil {
		r.start(qe.TaskType, qe.NewHandler(qe.LoadConfig(r.wcfg(qe.TaskType)), b.index, log))
		r.start(me.TaskType, me.NewHandler(me.LoadConfig(r.wcfg(me.TaskType)), b.catalog, b.index, log))
	} else {
		zapLog.Info("search disabled, query-elasticsearch not started")
		r.start(me.TaskType, me.NewHandler(me.LoadConfig(r.wcfg(me.TaskType)), b.catalog, nil, log))
	}

	zapLog.Info("workers registered", zap.Int("count", len(r.workers)))
	return r.workers
}
