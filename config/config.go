package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
	"orthos/calculator"
)

// DefaultPath 默认配置文件路径，相对于工作目录
const DefaultPath = "conf/config.ini"

// EnvPrefix 环境变量前缀，例如 ORTHOS_ADDR
const EnvPrefix = "ORTHOS_"

type Config struct {
	// server
	Addr            string `env:"ADDR"`
	ReadBufferSize  int    `env:"READ_BUFFER_SIZE"`
	WriteBufferSize int    `env:"WRITE_BUFFER_SIZE"`
	MaxMessageSize  int64  `env:"MAX_MESSAGE_SIZE"` // 单条 websocket 消息的最大字节数

	// calculator
	Workers       int     `env:"WORKERS"`
	MaxGridPoints int     `env:"MAX_GRID_POINTS"` // 单个场的格点数上限
	DefaultLoad   float64 `env:"DEFAULT_LOAD"`    // 前端未给出载荷时使用

	PlateLengthA float64 `env:"PLATE_LENGTH_A"`
	PlateWidthB  float64 `env:"PLATE_WIDTH_B"`
	PlateSteps   int     `env:"PLATE_STEPS"`

	HoleGridResolution int     `env:"HOLE_GRID_RESOLUTION"`
	HoleExtentRatio    float64 `env:"HOLE_EXTENT_RATIO"`
	HoleRadius         float64 `env:"HOLE_RADIUS"`

	// psc
	PSCUnnotchedStrength      float64 `env:"PSC_UNNOTCHED_STRENGTH"`
	PSCHoleRadius             float64 `env:"PSC_HOLE_RADIUS"`
	PSCCharacteristicDistance float64 `env:"PSC_CHARACTERISTIC_DISTANCE"`

	// log
	LogLevel string `env:"LOG_LEVEL"`
}

// Load reads the ini file at path, falling back to defaults for missing keys
// (or a missing file), then applies ORTHOS_* environment overrides.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Warn("配置文件不存在，使用默认配置")
	}
	file, err := ini.LooseLoad(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg := loadCfg(file)

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Default 不读取任何文件和环境变量的默认配置
func Default() Config {
	return loadCfg(ini.Empty())
}

func loadCfg(file *ini.File) Config {
	server := file.Section("server")
	calc := file.Section("calculator")
	psc := file.Section("psc")
	return Config{
		Addr:            server.Key("Addr").MustString(":9000"),
		ReadBufferSize:  server.Key("ReadBufferSize").MustInt(1024),
		WriteBufferSize: server.Key("WriteBufferSize").MustInt(1024),
		MaxMessageSize:  server.Key("MaxMessageSize").MustInt64(64 * 1024),

		Workers:       calc.Key("Workers").MustInt(4),
		MaxGridPoints: calc.Key("MaxGridPoints").MustInt(calculator.DefaultMaxGridPoints),
		DefaultLoad:   calc.Key("DefaultLoad").MustFloat64(1000),

		PlateLengthA: calc.Key("PlateLengthA").MustFloat64(1.0),
		PlateWidthB:  calc.Key("PlateWidthB").MustFloat64(1.0),
		PlateSteps:   calc.Key("PlateSteps").MustInt(50),

		HoleGridResolution: calc.Key("HoleGridResolution").MustInt(100),
		HoleExtentRatio:    calc.Key("HoleExtentRatio").MustFloat64(3.0),
		HoleRadius:         calc.Key("HoleRadius").MustFloat64(1.0),

		PSCUnnotchedStrength:      psc.Key("UnnotchedStrength").MustFloat64(1000e6),
		PSCHoleRadius:             psc.Key("HoleRadius").MustFloat64(0.005),
		PSCCharacteristicDistance: psc.Key("CharacteristicDistance").MustFloat64(0.001),

		LogLevel: file.Section("log").Key("Level").MustString("info"),
	}
}

// SetupLogger 按配置设置 logrus 的日志级别
func (c Config) SetupLogger() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
