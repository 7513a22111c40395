package store

import (
	"context"
	"sync"
)

var _ Adapter = &AdapterMock{}

type AdapterMock struct {
	DeleteFunc    func(ctx context.Context, collection string, id string) error
	GetFunc       func(ctx context.Context, collection string) ([]Record, error)
	ModeFunc      func() Mode
	SaveFunc      func(ctx context.Context, collection string, rec Record) (string, error)
	SeedFunc      func(ctx context.Context, collection string, records []Record) error
	SubscribeFunc func(ctx context.Context, collection string, fn Listener) (Unsubscribe, error)
	UpdateFunc    func(ctx context.Context, collection string, id string, partial Record) error

	calls struct {
		Delete []struct {
			Ctx        context.Context
			Collection string
			ID         string
		}
		Get []struct {
			Ctx        context.Context
			Collection string
		}
		Mode []struct {
		}
		Save []struct {
			Ctx        context.Context
			Collection string
			Rec        Record
		}
		Seed []struct {
			Ctx        context.Context
			Collection string
			Records    []Record
		}
		Subscribe []struct {
			Ctx        context.Context
			Collection string
			Fn         Listener
		}
		Update []struct {
			Ctx        context.Context
			Collection string
			ID         string
			Partial    Record
		}
	}
	lockDelete    sync.RWMutex
	lockGet       sync.RWMutex
	lockMode      sync.RWMutex
	lockSave      sync.RWMutex
	lockSeed      sync.RWMutex
	lockSubscribe sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *AdapterMock) Delete(ctx context.Context, collection string, id string) error {
	if mock.DeleteFunc == nil {
		panic("AdapterMock.DeleteFunc: method is nil but Adapter.Delete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Collection string
		ID         string
	}{Ctx: ctx, Collection: collection, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, collection, id)
}

func (mock *AdapterMock) DeleteCalls() []struct {
	Ctx        context.Context
	Collection string
	ID         string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *AdapterMock) Get(ctx context.Context, collection string) ([]Record, error) {
	if mock.GetFunc == nil {
		panic("AdapterMock.GetFunc: method is nil but Adapter.Get was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Collection string
	}{Ctx: ctx, Collection: collection}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, collection)
}

func (mock *AdapterMock) GetCalls() []struct {
	Ctx        context.Context
	Collection string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *AdapterMock) Mode() Mode {
	if mock.ModeFunc == nil {
		panic("AdapterMock.ModeFunc: method is nil but Adapter.Mode was just called")
	}
	mock.lockMode.Lock()
	mock.calls.Mode = append(mock.calls.Mode, struct{}{})
	mock.lockMode.Unlock()
	return mock.ModeFunc()
}

func (mock *AdapterMock) ModeCalls() []struct{} {
	mock.lockMode.RLock()
	calls := mock.calls.Mode
	mock.lockMode.RUnlock()
	return calls
}

func (mock *AdapterMock) Save(ctx context.Context, collection string, rec Record) (string, error) {
	if mock.SaveFunc == nil {
		panic("AdapterMock.SaveFunc: method is nil but Adapter.Save was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Collection string
		Rec        Record
	}{Ctx: ctx, Collection: collection, Rec: rec}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, collection, rec)
}

func (mock *AdapterMock) SaveCalls() []struct {
	Ctx        context.Context
	Collection string
	Rec        Record
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *AdapterMock) Seed(ctx context.Context, collection string, records []Record) error {
	if mock.SeedFunc == nil {
		panic("AdapterMock.SeedFunc: method is nil but Adapter.Seed was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Collection string
		Records    []Record
	}{Ctx: ctx, Collection: collection, Records: records}
	mock.lockSeed.Lock()
	mock.calls.Seed = append(mock.calls.Seed, callInfo)
	mock.lockSeed.Unlock()
	return mock.SeedFunc(ctx, collection, records)
}

func (mock *AdapterMock) SeedCalls() []struct {
	Ctx        context.Context
	Collection string
	Records    []Record
} {
	mock.lockSeed.RLock()
	calls := mock.calls.Seed
	mock.lockSeed.RUnlock()
	return calls
}

func (mock *AdapterMock) Subscribe(ctx context.Context, collection string, fn Listener) (Unsubscribe, error) {
	if mock.SubscribeFunc == nil {
		panic("AdapterMock.SubscribeFunc: method is nil but Adapter.Subscribe was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Collection string
		Fn         Listener
	}{Ctx: ctx, Collection: collection, Fn: fn}
	mock.lockSubscribe.Lock()
	mock.calls.Subscribe = append(mock.calls.Subscribe, callInfo)
	mock.lockSubscribe.Unlock()
	return mock.SubscribeFunc(ctx, collection, fn)
}

func (mock *AdapterMock) SubscribeCalls() []struct {
	Ctx        context.Context
	Collection string
	Fn         Listener
} {
	mock.lockSubscribe.RLock()
	calls := mock.calls.Subscribe
	mock.lockSubscribe.RUnlock()
	return calls
}

func (mock *AdapterMock) Update(ctx context.Context, collection string, id string, partial Record) error {
	if mock.UpdateFunc == nil {
		panic("AdapterMock.UpdateFunc: method is nil but Adapter.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Collection string
		ID         string
		Partial    Record
	}{Ctx: ctx, Collection: collection, ID: id, Partial: partial}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, collection, id, partial)
}

func (mock *AdapterMock) UpdateCalls() []struct {
	Ctx        context.Context
	Collection string
	ID         string
	Partial    Record
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
