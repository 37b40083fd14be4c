package logger

import (
	"context"
	"io"

	"join_now/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Logger adapts logrus to hlog.FullLogger so hertz and business code share
// one logging backend.
type Logger struct {
	l *logrus.Logger
}

func NewLogrusLogger() *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return &Logger{l: l}
}

func (lg *Logger) SetOutput(w io.Writer) {
	lg.l.SetOutput(w)
}

func (lg *Logger) SetLevel(lv hlog.Level) {
	lg.l.SetLevel(toLogrusLevel(lv))
}

func toLogrusLevel(lv hlog.Level) logrus.Level {
	switch lv {
	case hlog.LevelTrace:
		return logrus.TraceLevel
	case hlog.LevelDebug:
		return logrus.DebugLevel
	case hlog.LevelInfo, hlog.LevelNotice:
		return logrus.InfoLevel
	case hlog.LevelWarn:
		return logrus.WarnLevel
	case hlog.LevelError:
		return logrus.ErrorLevel
	case hlog.LevelFatal:
		return logrus.FatalLevel
	}
	return logrus.TraceLevel
}

func (lg *Logger) Trace(v ...any)  { lg.l.Trace(v...) }
func (lg *Logger) Debug(v ...any)  { lg.l.Debug(v...) }
func (lg *Logger) Info(v ...any)   { lg.l.Info(v...) }
func (lg *Logger) Notice(v ...any) { lg.l.Info(v...) }
func (lg *Logger) Warn(v ...any)   { lg.l.Warn(v...) }
func (lg *Logger) Error(v ...any)  { lg.l.Error(v...) }
func (lg *Logger) Fatal(v ...any)  { lg.l.Fatal(v...) }

func (lg *Logger) Tracef(format string, v ...any)  { lg.l.Tracef(format, v...) }
func (lg *Logger) Debugf(format string, v ...any)  { lg.l.Debugf(format, v...) }
func (lg *Logger) Infof(format string, v ...any)   { lg.l.Infof(format, v...) }
func (lg *Logger) Noticef(format string, v ...any) { lg.l.Infof(format, v...) }
func (lg *Logger) Warnf(format string, v ...any)   { lg.l.Warnf(format, v...) }
func (lg *Logger) Errorf(format string, v ...any)  { lg.l.Errorf(format, v...) }
func (lg *Logger) Fatalf(format string, v ...any)  { lg.l.Fatalf(format, v...) }

func (lg *Logger) entry(ctx context.Context) *logrus.Entry {
	if logID := trace_info.GetLogId(ctx); logID != "" {
		return lg.l.WithField("log_id", logID)
	}
	return logrus.NewEntry(lg.l)
}

func (lg *Logger) CtxTracef(ctx context.Context, format string, v ...any) {
	lg.entry(ctx).Tracef(format, v...)
}

func (lg *Logger) CtxDebugf(ctx context.Context, format string, v ...any) {
	lg.entry(ctx).Debugf(format, v...)
}

func (lg *Logger) CtxInfof(ctx context.Context, format string, v ...any) {
	lg.entry(ctx).Infof(format, v...)
}

func (lg *Logger) CtxNoticef(ctx context.Context, format string, v ...any) {
	lg.entry(ctx).Infof(format, v...)
}

func (lg *Logger) CtxWarnf(ctx context.Context, format string, v ...any) {
	lg.entry(ctx).Warnf(format, v...)
}

func (lg *Logger) CtxErrorf(ctx context.Context, format string, v ...any) {
	lg.entry(ctx).Errorf(format, v...)
}

func (lg *Logger) CtxFatalf(ctx context.Context, format string, v ...any) {
	lg.entry(ctx).Fatalf(format, v...)
}
