package job

import (
	"path/filepath"
	"testing"

	"github.com/robfig/cron/v3"

	"github.com/tutormatch/tutormatch/database"
)

func TestCheckpointJobRuns(t *testing.T) {
	if err := database.InitDB(filepath.Join(t.TempDir(), "job.db")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = database.CloseDB() })

	var j cron.Job = NewCheckpointJob()
	j.Run()
}

func TestCheckpointJobWithoutDatabase(t *testing.T) {
	if database.GetDB() != nil {
		t.Skip("database already open")
	}
	// logs a warning instead of panicking
	NewCheckpointJob().Run()
}
