package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// HTTP — отладочный/сервисный HTTP-интерфейс (инспекция состояния, метрики).
type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

// API — адреса и таймаут магазинного API.
type API struct {
	BaseURL string        `default:"http://localhost:9090/api/weblarek" envconfig:"BASE_URL"`
	CDNURL  string        `default:"http://localhost:9090/content/weblarek" envconfig:"CDN_URL"`
	Timeout time.Duration `default:"10s" envconfig:"TIMEOUT"`
}

// Storage — каталог персистентного хранилища корзины.
type Storage struct {
	Dir string `default:"./data" envconfig:"DIR"`
}

// Logger — режим логгера.
type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

// Tracing — настройки OTEL-трейсинга (по умолчанию выключен).
type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"ENABLED"`
	ServiceName string  `default:"storefront" envconfig:"SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"SAMPLE_RATIO"`
}

type Config struct {
	HTTP    HTTP
	API     API
	Storage Storage
	Logger  Logger
	Tracing Tracing
}

// Load — конфигурация из окружения с префиксом LAREK.
func Load() (Config, error) {
	return LoadWithPrefix("LAREK")
}

// LoadWithPrefix — как Load, но с произвольным префиксом (нужно тестам,
// чтобы не конфликтовать с реальным окружением).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
