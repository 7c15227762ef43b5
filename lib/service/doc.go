// Package service provides the request pipeline of hKV: a Service wraps one store.IStore
// and runs every request through dispatch and four ordered hook lists.
//
// Pipeline:
//
//	request -> on-received -> command.Dispatch -> on-executed -> on-before-send -> response -> on-after-send
//
// On-received and on-executed hooks only observe. On-before-send hooks may modify the
// response and each of them sees the modifications of the previous ones. On-after-send
// hooks carry no payload and run once the response is final.
//
// Construction:
//
//	svc := service.NewBuilder(memstore.NewMemStore()).
//		OnReceived(func(req command.CommandRequest) { ... }).
//		OnBeforeSend(func(resp *command.CommandResponse) { resp.Status = 201 }).
//		Use(service.LogHooks{}).
//		Use(service.NewStats(nil)).
//		Build()
//
// A Service is immutable after Build and cheap to copy. All copies share the store and
// the hooks, so a copy can be handed to every goroutine (or transport worker) that
// serves requests.
//
// Plugins:
//
//   - LogHooks: Logs requests and failed responses with the dragonboat logger.
//   - Stats: Records per command and per status counts in a go-metrics registry.
package service
