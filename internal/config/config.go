// Package config cloudlink CLI와 가짜 서버(cloudlink-fake)의 설정을 로드합니다.
//
// 설정 값은 아래 순서로 병합되며, 뒤에 오는 값이 앞의 값을 덮어씁니다.
//
//  1. 구조체 기본값 (newDefaultConfig)
//  2. JSON 설정 파일 (기본값: cloudlink.json)
//  3. 환경 변수 (접두사 CLOUDLINK_, 계층 구분자 __)
//
// 예: CLOUDLINK_CLIENT__SERVER_KEY -> client.server_key
package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/darkkaiser/cloudlink-sdk/pkg/cloudlink"
	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
	"github.com/darkkaiser/cloudlink-sdk/pkg/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 로그 파일명 등에 사용되는 애플리케이션 식별자입니다.
	AppName = "cloudlink"

	// DefaultFilename 실행 인자로 설정 파일이 지정되지 않았을 때 탐색하는 파일명입니다.
	// 이 파일은 없어도 되며, 없으면 기본값과 환경 변수만으로 설정을 구성합니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정으로 인식할 환경 변수의 접두사입니다.
	EnvPrefix = "CLOUDLINK_"

	// DefaultListenAddress 가짜 서버의 기본 수신 주소입니다.
	DefaultListenAddress = "127.0.0.1:8787"

	// DefaultTimeout CLI가 사용하는 요청 타임아웃 기본값입니다.
	DefaultTimeout = 30 * time.Second
)

// AppConfig 설정 파일의 최상위 구조체입니다.
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Client     ClientConfig     `json:"client"`
	FakeServer FakeServerConfig `json:"fake_server"`
}

// ClientConfig CloudLink 클라이언트 설정입니다. 필드 의미는 cloudlink.Config와 같습니다.
type ClientConfig struct {
	Hostname         string        `json:"hostname"`
	ServerKey        string        `json:"server_key"`
	LogLevel         string        `json:"log_level" validate:"log_level"`
	Timeout          time.Duration `json:"timeout" validate:"gte=0"`
	MaxResponseBytes int64         `json:"max_response_bytes" validate:"gte=-1"`
	RateLimit        float64       `json:"rate_limit" validate:"gte=0"`
	RateBurst        int           `json:"rate_burst" validate:"gte=0"`
}

// FakeServerConfig 로컬 개발용 가짜 서버 설정입니다.
type FakeServerConfig struct {
	ListenAddress string `json:"listen_address" validate:"required,hostname_port"`
	ServerKey     string `json:"server_key"`
}

func newDefaultConfig() AppConfig {
	return AppConfig{
		Client: ClientConfig{
			LogLevel: cloudlink.LogLevelNone.String(),
			Timeout:  DefaultTimeout,
		},
		FakeServer: FakeServerConfig{
			ListenAddress: DefaultListenAddress,
		},
	}
}

// validate 로드된 설정의 정합성을 검사합니다.
func (c *AppConfig) validate() error {
	if err := checkStruct(c.Client, "client"); err != nil {
		return err
	}
	if err := checkStruct(c.FakeServer, "fake_server"); err != nil {
		return err
	}
	return nil
}

// ToClientConfig CLI 설정을 SDK 클라이언트 설정으로 변환합니다.
//
// 필수 항목(hostname, server_key)은 여기서 검사하지 않습니다. cloudlink.New가 검사합니다.
func (c *AppConfig) ToClientConfig() (cloudlink.Config, error) {
	level, err := cloudlink.LogLevelFromString(c.Client.LogLevel)
	if err != nil {
		return cloudlink.Config{}, err
	}

	return cloudlink.Config{
		Hostname:         c.Client.Hostname,
		ServerKey:        c.Client.ServerKey,
		LogLevel:         level,
		Timeout:          c.Client.Timeout,
		MaxResponseBytes: c.Client.MaxResponseBytes,
		RateLimit:        c.Client.RateLimit,
		RateBurst:        c.Client.RateBurst,
	}, nil
}

// LogOptions Debug 여부에 따라 개발용 또는 운영용 로그 설정을 반환합니다.
func (c *AppConfig) LogOptions(appName string) log.Options {
	if c.Debug {
		return log.NewDevelopmentOptions(appName)
	}
	return log.NewProductionOptions(appName)
}

// Load 설정을 로드합니다.
//
// filename이 비어 있으면 DefaultFilename을 사용하며, 이 경우에 한해 파일이 없어도 에러가 아닙니다.
// 명시적으로 지정한 파일이 없으면 System 에러를 반환합니다.
func Load(filename string) (*AppConfig, error) {
	optional := false
	if filename == "" {
		filename = DefaultFilename
		optional = true
	}

	k := koanf.New(".")

	// 1. 구조체 기본값 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && optional:
		case errors.Is(err, fs.ErrNotExist):
			return nil, apperrors.Wrapf(err, apperrors.System, "설정 파일을 찾을 수 없습니다: '%s'", filename)
		default:
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일 로드 중 오류가 발생했습니다: '%s'", filename)
		}
	}

	// 3. 환경 변수 (최우선 순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var cfg AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			ErrorUnused:      true, // 구조체에 없는 키가 있으면 오타로 간주한다.
			WeaklyTypedInput: true,
			TagName:          "json",
			Result:           &cfg,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 구조체로 변환하는데 실패했습니다")
	}

	if err := cfg.validate(); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정('%s')의 유효성 검증에 실패했습니다", filename)
	}

	return &cfg, nil
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
//
//	CLOUDLINK_CLIENT__SERVER_KEY -> client.server_key
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
