package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"plantkeeper/internal/domain/garden"
	"plantkeeper/internal/domain/plant"
)

// SyncState — фаза конечного автомата реконсилятора.
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncFetching
	SyncDownloading
	SyncUploading
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncFetching:
		return "fetching"
	case SyncDownloading:
		return "downloading"
	case SyncUploading:
		return "uploading"
	default:
		return "unknown"
	}
}

// SyncStatus — исход завершенной синхронизации.
type SyncStatus int

const (
	// SyncedUpToDate — обе стороны уже согласованы, данные не передавались.
	SyncedUpToDate SyncStatus = iota
	// SyncedUploaded — локальная коллекция загружена на сервер.
	SyncedUploaded
	// SyncedDownloaded — серверная коллекция заменила локальную.
	SyncedDownloaded
)

func (s SyncStatus) String() string {
	switch s {
	case SyncedUploaded:
		return "uploaded"
	case SyncedDownloaded:
		return "downloaded"
	default:
		return "up-to-date"
	}
}

// SyncResult описывает, что сделала синхронизация и какой меткой времени
// стороны теперь согласованы.
type SyncResult struct {
	Status    SyncStatus
	Timestamp time.Time
	Records   int
}

// RemoteGarden — серверная сторона синхронизации.
type RemoteGarden interface {
	GetGarden(ctx context.Context) (*garden.GetResponse, bool, error)
	PutGarden(ctx context.Context, records plant.Collection) (time.Time, error)
}

// Reconciler выполняет синхронизацию целыми коллекциями по принципу
// "новее — побеждает". Конфликт разрешается на уровне всей коллекции,
// слияния отдельных записей нет.
type Reconciler struct {
	store  *Store
	remote RemoteGarden
	log    *slog.Logger

	mu    sync.Mutex
	state SyncState
}

func NewReconciler(store *Store, remote RemoteGarden, log *slog.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		remote: remote,
		log:    log.With("component", "sync"),
	}
}

// State возвращает текущую фазу синхронизации.
func (r *Reconciler) State() SyncState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Reconciler) setState(s SyncState) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// Sync сверяет локальную коллекцию с серверной. Повторный вызов во время
// идущей синхронизации отклоняется с ErrSyncInProgress, не дожидаясь
// завершения первой.
func (r *Reconciler) Sync(ctx context.Context) (*SyncResult, error) {
	r.mu.Lock()
	if r.state != SyncIdle {
		r.mu.Unlock()
		return nil, ErrSyncInProgress
	}
	r.state = SyncFetching
	r.mu.Unlock()

	defer r.setState(SyncIdle)

	result, err := r.reconcile(ctx)
	if err != nil {
		r.log.Error("Синхронизация не удалась", "error", err)
		return nil, err
	}

	r.log.Info("Синхронизация завершена",
		"status", result.Status.String(),
		"records", result.Records,
		"timestamp", result.Timestamp)
	return result, nil
}

func (r *Reconciler) reconcile(ctx context.Context) (*SyncResult, error) {
	remote, exists, err := r.remote.GetGarden(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение серверного снапшота: %w", err)
	}

	lastLocalUpdate := r.store.SettingTime(SettingLastLocalUpdate)
	lastSynced := r.store.SettingTime(SettingLastSynced)

	switch {
	case !exists:
		// На сервере еще ничего нет — первая загрузка
		return r.upload(ctx)

	case lastLocalUpdate.After(remote.LastUpdated):
		// Локальные правки свежее всего, что видел сервер
		return r.upload(ctx)

	case remote.LastUpdated.After(lastSynced):
		// Сервер ушел вперед с момента нашей последней сверки
		return r.download(remote)

	default:
		return &SyncResult{
			Status:    SyncedUpToDate,
			Timestamp: lastSynced,
			Records:   len(r.store.LoadCollection()),
		}, nil
	}
}

func (r *Reconciler) upload(ctx context.Context) (*SyncResult, error) {
	r.setState(SyncUploading)

	records := r.store.LoadCollection()
	stamp, err := r.remote.PutGarden(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("загрузка коллекции на сервер: %w", err)
	}

	if err := r.store.SaveSettingTime(SettingLastSynced, stamp); err != nil {
		return nil, err
	}

	return &SyncResult{Status: SyncedUploaded, Timestamp: stamp, Records: len(records)}, nil
}

func (r *Reconciler) download(remote *garden.GetResponse) (*SyncResult, error) {
	r.setState(SyncDownloading)

	if err := r.store.SaveCollection(remote.Records); err != nil {
		return nil, fmt.Errorf("сохранение серверной коллекции: %w", err)
	}

	// Обе метки двигаем к серверной: скачанное состояние становится
	// и локальным, и согласованным
	if err := r.store.SaveSettingTime(SettingLastSynced, remote.LastUpdated); err != nil {
		return nil, err
	}
	if err := r.store.SaveSettingTime(SettingLastLocalUpdate, remote.LastUpdated); err != nil {
		return nil, err
	}

	return &SyncResult{
		Status:    SyncedDownloaded,
		Timestamp: remote.LastUpdated,
		Records:   len(remote.Records),
	}, nil
}
