package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/mkulima/duka/internal/sms/client"
)

func initSMSClient() client.Client {
	type Config struct {
		Provider        string `yaml:"provider"`
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	// 本地开发不用真发短信
	if cfg.Provider == "console" {
		return client.NewConsoleClient()
	}
	aliClient, err := client.NewAliyunSMS(cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		panic(err)
	}
	return aliClient
}
