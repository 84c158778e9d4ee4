package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"

	"oio/benchmark"
	"oio/config"
	"oio/progress"
	"oio/report"
	"oio/store"
)

func main() {
	configFile := flag.String("config-file", "oio.toml", "Path to the oio config file")
	workload := flag.String("workload", "", "Override the configured workload: upload or download")
	numJobs := flag.Int("num-jobs", 0, "Override the configured number of parallel workers")
	runTime := flag.Duration("run-time", 0, "Override the configured run time")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(*configFile, *workload, *numJobs, *runTime); err != nil {
		log.WithError(err).Error("benchmark failed")
		os.Exit(1)
	}
}

func run(configFile, workload string, numJobs int, runTime time.Duration) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if workload != "" {
		if err := cfg.Job.Workload.UnmarshalText([]byte(workload)); err != nil {
			return err
		}
	}
	if numJobs > 0 {
		cfg.Job.NumJobs = numJobs
	}
	if runTime > 0 {
		cfg.Job.RunTime = config.Duration(runTime)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := benchmark.SetMaxResources(); err != nil {
		log.WithError(err).Warn("failed to raise resource limits")
	}

	st, err := store.New(cfg.Service)
	if err != nil {
		return err
	}

	// Ctrl-C stops workers at the next loop iteration and reports the
	// partial run.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	job := benchmark.NewJob(st, benchmark.JobParams{
		Workload:  cfg.Job.Workload,
		NumJobs:   cfg.Job.NumJobs,
		FileSize:  cfg.Job.FileSize,
		RunTime:   time.Duration(cfg.Job.RunTime),
		RateLimit: cfg.Job.RateLimit,
	})

	bar := progress.NewTimedBar(time.Duration(cfg.Job.RunTime))
	if cfg.Job.Workload == config.WorkloadUpload {
		bar.SetCaption("Uploading")
	} else {
		bar.SetCaption("Downloading")
	}

	res, err := job.Run(ctx)
	bar.Finish()
	if err != nil {
		return err
	}

	report.Print(res)
	return nil
}
