package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
}

// EnvPrefix prefixes environment overrides, e.g. CPUSCHED_PORT or
// CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
const EnvPrefix = "CPUSCHED"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{4, 8, 0})
}

// Load reads the scheduler configuration. An empty path searches for
// config.yaml in the working directory; a missing file there is not an error
// and leaves the defaults in place.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		logrus.Debug("no config.yaml found, using defaults")
	}

	config := &SchedulerConfig{}
	config.Port = v.GetInt("port")
	config.LogLevel = v.GetString("log_level")
	config.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	levels, err := intSlice(v.Get("scheduler.multilevel_feedback_queue.levels_time_quantum"))
	if err != nil {
		return nil, fmt.Errorf("scheduler.multilevel_feedback_queue.levels_time_quantum: %w", err)
	}
	config.MultilevelFeedbackQueueLevelsTimeQuantum = levels
	return config, nil
}

// intSlice accepts a YAML list or, from the environment, a comma or space
// separated string such as "4,8,0".
func intSlice(value any) ([]int, error) {
	if s, ok := value.(string); ok {
		value = strings.Fields(strings.ReplaceAll(s, ",", " "))
	}
	return cast.ToIntSliceE(value)
}
