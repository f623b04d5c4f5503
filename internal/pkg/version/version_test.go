package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		input     Info
		buildInfo *debug.BuildInfo
		ok        bool
		want      Info
	}{
		{
			name:  "빌드 메타데이터 없음",
			input: Info{},
			ok:    false,
			want:  Info{Version: unknown, Commit: unknown},
		},
		{
			name:  "ldflags 값이 우선",
			input: Info{Version: "v1.0.0", Commit: "abc"},
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Path: modulePath, Version: "v9.9.9"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "def"},
					{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
				},
			},
			ok:   true,
			want: Info{Version: "v1.0.0", Commit: "abc", BuildDate: "2026-01-01T00:00:00Z"},
		},
		{
			name:  "CLI 빌드의 Main 모듈 버전",
			input: Info{},
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Path: modulePath, Version: "v1.3.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "1234567890"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			ok:   true,
			want: Info{Version: "v1.3.0", Commit: "1234567890", Dirty: true},
		},
		{
			name:  "개발 빌드는 unknown",
			input: Info{},
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Path: modulePath, Version: "(devel)"},
			},
			ok:   true,
			want: Info{Version: unknown, Commit: unknown},
		},
		{
			name:  "라이브러리로 포함된 경우 Deps 버전",
			input: Info{},
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Path: "example.com/app", Version: "v0.1.0"},
				Deps: []*debug.Module{
					{Path: "github.com/other/lib", Version: "v2.0.0"},
					{Path: modulePath, Version: "v1.4.2"},
				},
			},
			ok:   true,
			want: Info{Version: "v1.4.2", Commit: unknown},
		},
		{
			name:  "replace 지시어가 적용된 의존성",
			input: Info{},
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Path: "example.com/app"},
				Deps: []*debug.Module{
					{Path: modulePath, Version: "v1.4.2", Replace: &debug.Module{Path: "../sdk", Version: "v1.5.0-rc.1"}},
				},
			},
			ok:   true,
			want: Info{Version: "v1.5.0-rc.1", Commit: unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.buildInfo, tt.ok)

			got := resolve(tt.input)

			tt.want.GoVersion = runtime.Version()
			tt.want.OS = runtime.GOOS
			tt.want.Arch = runtime.GOARCH
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfo_UserAgent(t *testing.T) {
	i := Info{Version: "v1.2.0", OS: "linux", Arch: "amd64", GoVersion: "go1.24.11"}
	assert.Equal(t, "cloudlink-sdk-go/v1.2.0 (linux/amd64; go1.24.11)", i.UserAgent())

	assert.True(t, strings.HasPrefix(UserAgent(), userAgentProduct+"/"))
}

func TestInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"빈 정보", Info{}, unknown},
		{"버전만", Info{Version: "v1.0.0"}, "v1.0.0"},
		{"unknown 커밋 생략", Info{Version: "v1.0.0", Commit: unknown}, "v1.0.0"},
		{
			"전체",
			Info{Version: "v1.0.0", Commit: "1234567890", BuildDate: "2026-01-01", GoVersion: "go1.24", OS: "linux", Arch: "arm64", Dirty: true},
			"v1.0.0+dirty (commit: 1234567, date: 2026-01-01, go: go1.24, linux/arm64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestGet_Stable(t *testing.T) {
	assert.Equal(t, Get(), Get())
	assert.NotEmpty(t, Get().Version)
	assert.Contains(t, Get().ToMap(), "version")
}
