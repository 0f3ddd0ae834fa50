package svc

import (
	"context"
	"time"

	"EcoSage/app/api/storefront/internal/agent"
	"EcoSage/app/api/storefront/internal/config"
	"EcoSage/app/api/storefront/internal/mq"
	"EcoSage/app/common/middleware"
	"EcoSage/app/core/cartengine"
	"EcoSage/app/core/intent"
	"EcoSage/app/dal/cartstore"
	productmodel "EcoSage/app/dal/product"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	ProductsModel productmodel.ProductsModel
	CartStore     *cartstore.RedisStore
	CartEngine    *cartengine.Engine
	Matcher       *intent.Matcher
	Classifier    *agent.Classifier
	AsynqClient   *asynq.Client

	SessionMiddleware rest.Middleware
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	store := cartstore.NewRedisStore(redis.MustNewRedis(c.RedisConf), time.Duration(c.Cart.TTLSeconds)*time.Second)

	asynqAddr := c.AsynqConf.Addr
	if asynqAddr == "" {
		asynqAddr = c.RedisConf.Host
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: asynqAddr})

	engineOpts := []cartengine.Option{
		cartengine.WithPolicy(cartengine.Policy{
			KeepPromoOnMutate:    c.Cart.KeepPromoOnMutate,
			ClearPromoOnCheckout: c.Cart.ClearPromoOnCheckout,
		}),
	}
	if len(c.Cart.PromoCodes) > 0 {
		engineOpts = append(engineOpts, cartengine.WithPromoTable(c.Cart.PromoCodes))
	}
	if producer := mq.NewCartEventsProducer(c.KafkaConf.Brokers, c.KafkaConf.CartTopic); producer != nil {
		engineOpts = append(engineOpts, cartengine.WithNotifier(producer))
	} else {
		logx.Infow("skip cart events producer, kafka config missing")
	}
	if scheduler := mq.NewExpiryScheduler(asynqClient, store, time.Duration(c.Cart.ExpireAfterSeconds)*time.Second); scheduler != nil {
		engineOpts = append(engineOpts, cartengine.WithNotifier(scheduler))
	}

	sc := &ServiceContext{
		Config:            c,
		ProductsModel:     productmodel.NewProductsModel(sqlx.NewMysql(c.Mysql.DataSource), c.CacheConf),
		CartStore:         store,
		CartEngine:        cartengine.NewEngine(store, engineOpts...),
		Matcher:           intent.NewMatcher(intent.Options{}),
		AsynqClient:       asynqClient,
		SessionMiddleware: middleware.NewSessionMiddleware(c.Session.Secret).Handle,
	}

	if c.ChatModel.APIKey != "" && c.ChatModel.Model != "" {
		cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
			BaseURL: c.ChatModel.BaseUrl,
			APIKey:  c.ChatModel.APIKey,
			Model:   c.ChatModel.Model,
		})
		if err != nil {
			logx.Errorw("init ark chat model failed", logx.Field("err", err))
		} else if classifier, err := agent.NewClassifier(context.Background(), logx.WithContext(context.Background()), cm); err != nil {
			logx.Errorw("init assistant classifier failed", logx.Field("err", err))
		} else {
			sc.Classifier = classifier
			logx.Infow("assistant chat model initialized")
		}
	}

	return sc
}
