package pulse

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Context encapsulates the low level state of the webgpu context.
// It is not bound to any window, results stay in gpu buffers.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Adapter *wgpu.Adapter
}

type HeadlessOptions struct {
	// use a software adapter, also enabled by WGPU_FORCE_FALLBACK_ADAPTER=1
	ForceFallbackAdapter bool
}

func NewHeadless(opts HeadlessOptions) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{}

	fallback := opts.ForceFallbackAdapter || forceFallbackAdapter

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: fallback,
		PowerPreference:      wgpu.PowerPreferenceHighPerformance,
	})

	if err != nil {
		return st, fmt.Errorf("request adapter: %w", err)
	}

	// get a Device with the default settings
	st.Device, err = st.Adapter.RequestDevice(nil)
	if err != nil {
		return st, fmt.Errorf("request device: %w", err)
	}

	st.Queue = st.Device.GetQueue()

	slog.Debug("Created headless webgpu context",
		slog.Bool("fallbackAdapter", fallback))

	return st, nil
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}
}
