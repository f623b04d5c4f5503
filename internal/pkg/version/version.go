// Package version SDK와 CLI의 빌드 정보를 제공합니다.
//
// 릴리스 빌드는 -ldflags 로 버전과 커밋을 주입하고, 주입되지 않은 경우(go install, go run 등)에는
// 실행 파일에 포함된 모듈 메타데이터(debug.ReadBuildInfo)에서 값을 보강합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/cloudlink-sdk/internal/pkg/version.appVersion=v1.2.0"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const (
	unknown = "unknown"

	// modulePath SDK가 다른 모듈의 의존성으로 포함되었을 때 Deps 에서 자신의 버전을 찾기 위한 경로입니다.
	modulePath = "github.com/darkkaiser/cloudlink-sdk"

	userAgentProduct = "cloudlink-sdk-go"
)

// 링커 플래그로 주입되는 값입니다. 직접 읽지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	buildDate     = ""
)

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 선언합니다.
var readBuildInfo = debug.ReadBuildInfo

var (
	loadOnce sync.Once
	loaded   Info
)

// Info 빌드 정보입니다.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Dirty     bool   `json:"dirty"`
}

// Get 빌드 정보를 반환합니다. 최초 호출 시 한 번만 계산됩니다.
func Get() Info {
	loadOnce.Do(func() {
		loaded = resolve(Info{
			Version:   strings.TrimSpace(appVersion),
			Commit:    strings.TrimSpace(gitCommitHash),
			BuildDate: strings.TrimSpace(buildDate),
		})
	})
	return loaded
}

// resolve 비어 있는 필드를 런타임 정보와 모듈 메타데이터로 채웁니다.
func resolve(bi Info) Info {
	bi.GoVersion = runtime.Version()
	bi.OS = runtime.GOOS
	bi.Arch = runtime.GOARCH

	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" {
					bi.BuildDate = s.Value
				}
			case "vcs.modified":
				bi.Dirty = bi.Dirty || s.Value == "true"
			}
		}

		if bi.Version == "" {
			bi.Version = moduleVersion(info)
		}
	}

	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.Commit == "" {
		bi.Commit = unknown
	}

	return bi
}

// moduleVersion CLI로 빌드된 경우에는 Main, 라이브러리로 포함된 경우에는 Deps 에서 버전을 찾습니다.
func moduleVersion(info *debug.BuildInfo) string {
	if info.Main.Path == modulePath && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path != modulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return ""
}

// UserAgent 원격 서비스에 전송할 기본 User-Agent 문자열을 반환합니다.
//
//	cloudlink-sdk-go/v1.2.0 (linux/amd64; go1.24.11)
func UserAgent() string {
	return Get().UserAgent()
}

// UserAgent 빌드 정보로 User-Agent 문자열을 만듭니다.
func (i Info) UserAgent() string {
	return fmt.Sprintf("%s/%s (%s/%s; %s)", userAgentProduct, i.Version, i.OS, i.Arch, i.GoVersion)
}

// ToMap 구조적 로깅용 필드 맵을 반환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":    i.Version,
		"commit":     i.Commit,
		"build_date": i.BuildDate,
		"go_version": i.GoVersion,
		"os":         i.OS,
		"arch":       i.Arch,
		"dirty":      i.Dirty,
	}
}

// String 사람이 읽기 위한 한 줄 요약을 반환합니다.
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = unknown
	}
	if i.Dirty {
		v += "+dirty"
	}

	var details []string
	if i.Commit != "" && i.Commit != unknown {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		details = append(details, "commit: "+commit)
	}
	if i.BuildDate != "" {
		details = append(details, "date: "+i.BuildDate)
	}
	if i.GoVersion != "" {
		details = append(details, "go: "+i.GoVersion)
	}
	if i.OS != "" && i.Arch != "" {
		details = append(details, i.OS+"/"+i.Arch)
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
