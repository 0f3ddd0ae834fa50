// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	LogConf logx.LogConf

	Mysql struct {
		DataSource string
	}
	CacheConf cache.CacheConf
	RedisConf redis.RedisConf

	Session struct {
		Secret string
	}

	Cart CartConf

	KafkaConf struct {
		Brokers   []string `json:",optional"`
		CartTopic string   `json:",optional"`
	}

	AsynqConf struct {
		Addr string `json:",optional"`
	}
	AsynqServerConf struct {
		Concurrency int            `json:",default=4"`
		Queues      map[string]int `json:",optional"`
	}

	ChatModel struct {
		BaseUrl string `json:",optional"`
		APIKey  string `json:",optional"`
		Model   string `json:",optional"`
	}
}

type CartConf struct {
	TTLSeconds            int                `json:",default=2592000"`
	ExpireAfterSeconds    int                `json:",default=259200"`
	FreeShippingThreshold float64            `json:",default=50"`
	FlatShippingFee       float64            `json:",default=5.99"`
	PromoCodes            map[string]float64 `json:",optional"`
	KeepPromoOnMutate     bool               `json:",default=true"`
	ClearPromoOnCheckout  bool               `json:",default=true"`
}
