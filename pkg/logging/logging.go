package logging

import (
	"io"
	"os"
	"path/filepath"
	"quickcap/config"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger     *zap.SugaredLogger
	fileHandle *os.File
)

func Initialize() error {
	consoleLevel := viper.GetInt("logging.console-level")
	if viper.GetBool("debug") {
		consoleLevel = int(zapcore.DebugLevel)
	}
	consoleEnc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	consoleCore := zapcore.NewCore(
		consoleEnc,
		zapcore.Lock(os.Stderr),
		zapcore.Level(consoleLevel),
	)

	fileEncCfg := zap.NewProductionEncoderConfig()
	fileEncCfg.TimeKey = "ts"
	fileEncCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileEncCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	fileEnc := zapcore.NewConsoleEncoder(fileEncCfg)

	logPath := filepath.Join(config.ConfigPath(), "log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	fileHandle = f
	fileCore := zapcore.NewCore(
		fileEnc,
		zapcore.AddSync(io.Writer(f)),
		zapcore.Level(viper.GetInt("logging.file-level")),
	)

	core := zapcore.NewTee(consoleCore, fileCore)
	Logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Sugar()
	return nil
}

func Close() error {
	if fileHandle != nil {
		return fileHandle.Close()
	}
	return nil
}
