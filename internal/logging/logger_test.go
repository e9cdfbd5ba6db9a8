package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/clubtrainer/pkg"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("INFO"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.FatalLevel, GetLevel("fatal"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("verbose"))
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	})

	out := Setup(LoggerSetupParams{LogLevel: "warn"})
	assert.Equal(t, os.Stdout, out)
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	logPath := filepath.Join(t.TempDir(), "club")
	out = Setup(LoggerSetupParams{LogFileName: logPath, LogLevel: "info", LogFormatJSON: true})
	fileLogger, ok := out.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, logPath+".log", fileLogger.Filename)

	logrus.Info("workout resolved")
	require.NoError(t, fileLogger.Close())
	content, err := os.ReadFile(logPath + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"workout resolved"`)

	out = Setup(LoggerSetupParams{LogFileName: logPath, LogToStdout: true})
	combined, ok := out.(*pkg.CombinedWriter)
	require.True(t, ok)
	assert.Len(t, combined.Writers, 2)
	require.NoError(t, combined.Writers[1].(*lumberjack.Logger).Close())
}
