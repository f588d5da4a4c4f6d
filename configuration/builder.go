package configuration

import (
	"fmt"

	"github.com/willibrandon/blocklog"
	"github.com/willibrandon/blocklog/sinks"
)

// CreateLogger builds a logger from the configuration.
func (c *Configuration) CreateLogger(extra ...blocklog.Option) (*blocklog.Logger, error) {
	opts, err := c.BuildOptions()
	if err != nil {
		return nil, err
	}
	return blocklog.New(append(opts, extra...)...), nil
}

// BuildOptions converts the configuration into logger options.
func (c *Configuration) BuildOptions() ([]blocklog.Option, error) {
	lc := c.Blocklog
	var opts []blocklog.Option

	style, err := ParseStyle(lc.Style)
	if err != nil {
		return nil, err
	}
	opts = append(opts, blocklog.WithStyle(style))

	switch lc.TraceMode {
	case "sweep", "":
	case "single":
		if lc.Marker == "" {
			return nil, fmt.Errorf("single trace mode requires a Marker")
		}
		opts = append(opts, blocklog.WithSingleFrame(lc.Marker))
	default:
		return nil, fmt.Errorf("unknown trace mode: %s", lc.TraceMode)
	}

	if lc.TabWidth > 0 {
		opts = append(opts, blocklog.WithTabWidth(lc.TabWidth))
	}
	if lc.RootPrefix != "" {
		opts = append(opts, blocklog.WithRootPrefix(lc.RootPrefix))
	}
	if lc.TraceSkip > 0 {
		opts = append(opts, blocklog.WithTraceSkip(lc.TraceSkip))
	}

	for _, sc := range lc.WriteTo {
		opt, err := buildSink(sc)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

func buildSink(sc SinkConfiguration) (blocklog.Option, error) {
	switch sc.Name {
	case "Console":
		if GetBool(sc.Args, "plain", false) {
			return blocklog.WithConsoleTheme(sinks.PlainTheme()), nil
		}
		return blocklog.WithConsole(), nil
	case "File":
		path := GetString(sc.Args, "path", "")
		if path == "" {
			return nil, fmt.Errorf("File sink requires a path argument")
		}
		return blocklog.WithFile(path), nil
	case "Sentry":
		dsn := GetString(sc.Args, "dsn", "")
		if dsn == "" {
			return nil, fmt.Errorf("Sentry sink requires a dsn argument")
		}
		var sentryOpts []sinks.SentryOption
		if env := GetString(sc.Args, "environment", ""); env != "" {
			sentryOpts = append(sentryOpts, sinks.WithSentryEnvironment(env))
		}
		return blocklog.WithSentry(dsn, sentryOpts...), nil
	default:
		return nil, fmt.Errorf("unknown sink: %s", sc.Name)
	}
}
