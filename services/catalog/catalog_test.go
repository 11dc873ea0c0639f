package catalog

import (
	"fmt"
	"testing"

	"glowdesk/models"
	"glowdesk/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogRepo struct {
	services map[string]*models.Service
	renamed  map[string]string
}

func newStubCatalogRepo(services ...models.Service) *stubCatalogRepo {
	r := &stubCatalogRepo{services: map[string]*models.Service{}, renamed: map[string]string{}}
	for i := range services {
		svc := services[i]
		r.services[svc.ID] = &svc
	}
	return r
}

func (r *stubCatalogRepo) ListServices(string) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range r.services {
		out = append(out, *svc)
	}
	return out, nil
}
func (r *stubCatalogRepo) GetServiceByName(_, name string) (*models.Service, error) {
	for _, svc := range r.services {
		if svc.Name == name {
			return svc, nil
		}
	}
	return nil, nil
}
func (r *stubCatalogRepo) GetServiceByID(_, id string) (*models.Service, error) {
	return r.services[id], nil
}
func (r *stubCatalogRepo) Create(svc *models.Service) error {
	r.services[svc.ID] = svc
	return nil
}
func (r *stubCatalogRepo) Update(svc *models.Service) error {
	r.services[svc.ID] = svc
	return nil
}
func (r *stubCatalogRepo) Delete(_, id string) error {
	delete(r.services, id)
	return nil
}
func (r *stubCatalogRepo) Rename(_, id, newName string) (string, error) {
	svc, ok := r.services[id]
	if !ok {
		return "", fmt.Errorf("service %s not found", id)
	}
	old := svc.Name
	svc.Name = newName
	r.renamed[old] = newName
	return old, nil
}

type stubStaffRepo struct {
	cascades []string
}

func (r *stubStaffRepo) ListStaff(string) ([]models.Staff, error)      { return nil, nil }
func (r *stubStaffRepo) GetByID(string, string) (*models.Staff, error) { return nil, nil }
func (r *stubStaffRepo) Create(*models.Staff) error                    { return nil }
func (r *stubStaffRepo) Update(*models.Staff) error                    { return nil }
func (r *stubStaffRepo) Delete(string, string) error                   { return nil }
func (r *stubStaffRepo) RenameServiceRefs(_, oldName, newName string) (int64, error) {
	r.cascades = append(r.cascades, oldName+"->"+newName)
	return 2, nil
}

type stubEnqueuer struct {
	tasks []*asynq.Task
	fail  bool
}

func (e *stubEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if e.fail {
		return nil, fmt.Errorf("queue down")
	}
	e.tasks = append(e.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func TestRename_EnqueuesCascadeTask(t *testing.T) {
	repo := newStubCatalogRepo(models.Service{ID: "svc-1", SalonID: "salon-1", Name: "Cut"})
	staff := &stubStaffRepo{}
	queue := &stubEnqueuer{}
	svc := &DefaultCatalogService{Repo: repo, StaffRepo: staff, Tasks: queue}

	require.NoError(t, svc.Rename("salon-1", "svc-1", "Cut & Style"))

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, tasks.TypeRenameCascade, queue.tasks[0].Type())
	assert.Empty(t, staff.cascades, "cascade is deferred to the worker")
}

func TestRename_FallsBackInlineWhenQueueFails(t *testing.T) {
	repo := newStubCatalogRepo(models.Service{ID: "svc-1", SalonID: "salon-1", Name: "Cut"})
	staff := &stubStaffRepo{}
	svc := &DefaultCatalogService{Repo: repo, StaffRepo: staff, Tasks: &stubEnqueuer{fail: true}}

	require.NoError(t, svc.Rename("salon-1", "svc-1", "Cut & Style"))
	assert.Equal(t, []string{"Cut->Cut & Style"}, staff.cascades)
}

func TestRename_NoopWhenNameUnchanged(t *testing.T) {
	repo := newStubCatalogRepo(models.Service{ID: "svc-1", SalonID: "salon-1", Name: "Cut"})
	queue := &stubEnqueuer{}
	svc := &DefaultCatalogService{Repo: repo, StaffRepo: &stubStaffRepo{}, Tasks: queue}

	require.NoError(t, svc.Rename("salon-1", "svc-1", "Cut"))
	assert.Empty(t, queue.tasks)
}

func TestUpdate_RejectsNameChange(t *testing.T) {
	repo := newStubCatalogRepo(models.Service{ID: "svc-1", SalonID: "salon-1", Name: "Cut", Active: true})
	svc := &DefaultCatalogService{Repo: repo, StaffRepo: &stubStaffRepo{}}

	err := svc.Update(&models.Service{ID: "svc-1", SalonID: "salon-1", Name: "Trim", Active: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rename")
}

func TestCreate_Validates(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newStubCatalogRepo(), StaffRepo: &stubStaffRepo{}}

	assert.Error(t, svc.Create(&models.Service{Name: "  "}))
	assert.Error(t, svc.Create(&models.Service{Name: "Cut", Price: -5}))
	assert.NoError(t, svc.Create(&models.Service{ID: "svc-9", Name: "Cut", Price: 30}))
}
