// Package mocks holds testify mocks for the backend client contracts shared
// by several usecase test suites.
package mocks

import (
	"context"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
)

type AppointmentBackendClient struct {
	mock.Mock
}

func (m *AppointmentBackendClient) FindAll(ctx context.Context, status, date string) (*models.Page[models.Appointment], error) {
	args := m.Called(ctx, status, date)
	page, _ := args.Get(0).(*models.Page[models.Appointment])
	return page, args.Error(1)
}

func (m *AppointmentBackendClient) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentBackendClient) Create(ctx context.Context, payload map[string]interface{}) (*models.Appointment, error) {
	args := m.Called(ctx, payload)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentBackendClient) Update(ctx context.Context, payload map[string]interface{}) (*models.Appointment, error) {
	args := m.Called(ctx, payload)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentBackendClient) Delete(ctx context.Context, appointmentID string) error {
	return m.Called(ctx, appointmentID).Error(0)
}

type PatientBackendClient struct {
	mock.Mock
}

func (m *PatientBackendClient) FindAll(ctx context.Context, search string) (*models.Page[models.Patient], error) {
	args := m.Called(ctx, search)
	page, _ := args.Get(0).(*models.Page[models.Patient])
	return page, args.Error(1)
}

func (m *PatientBackendClient) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientBackendClient) Create(ctx context.Context, payload map[string]interface{}) (*models.Patient, error) {
	args := m.Called(ctx, payload)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientBackendClient) Update(ctx context.Context, payload map[string]interface{}) (*models.Patient, error) {
	args := m.Called(ctx, payload)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientBackendClient) Delete(ctx context.Context, patientID string) error {
	return m.Called(ctx, patientID).Error(0)
}

func (m *PatientBackendClient) UploadAttachment(ctx context.Context, request *requests.UploadAttachment) (*models.Attachment, error) {
	args := m.Called(ctx, request)
	attachment, _ := args.Get(0).(*models.Attachment)
	return attachment, args.Error(1)
}

func (m *PatientBackendClient) DeleteAttachment(ctx context.Context, attachmentID string) error {
	return m.Called(ctx, attachmentID).Error(0)
}

type StaffBackendClient struct {
	mock.Mock
}

func (m *StaffBackendClient) FindAll(ctx context.Context, staffType string) (*models.Page[models.StaffMember], error) {
	args := m.Called(ctx, staffType)
	page, _ := args.Get(0).(*models.Page[models.StaffMember])
	return page, args.Error(1)
}

func (m *StaffBackendClient) Create(ctx context.Context, request *requests.CreateStaff) error {
	return m.Called(ctx, request).Error(0)
}

func (m *StaffBackendClient) Update(ctx context.Context, request *requests.UpdateStaff) error {
	return m.Called(ctx, request).Error(0)
}

func (m *StaffBackendClient) Delete(ctx context.Context, staffID string) error {
	return m.Called(ctx, staffID).Error(0)
}

type ServiceBackendClient struct {
	mock.Mock
}

func (m *ServiceBackendClient) FindAll(ctx context.Context, filter *requests.ServiceFilter) (*models.Page[models.Service], error) {
	args := m.Called(ctx, filter)
	page, _ := args.Get(0).(*models.Page[models.Service])
	return page, args.Error(1)
}

func (m *ServiceBackendClient) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	args := m.Called(ctx, serviceID)
	service, _ := args.Get(0).(*models.Service)
	return service, args.Error(1)
}

func (m *ServiceBackendClient) Create(ctx context.Context, payload map[string]interface{}) (*models.Service, error) {
	args := m.Called(ctx, payload)
	service, _ := args.Get(0).(*models.Service)
	return service, args.Error(1)
}

func (m *ServiceBackendClient) Update(ctx context.Context, payload map[string]interface{}) (*models.Service, error) {
	args := m.Called(ctx, payload)
	service, _ := args.Get(0).(*models.Service)
	return service, args.Error(1)
}

func (m *ServiceBackendClient) Delete(ctx context.Context, serviceID string) error {
	return m.Called(ctx, serviceID).Error(0)
}

type SubscriptionBackendClient struct {
	mock.Mock
}

func (m *SubscriptionBackendClient) FindCurrent(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *SubscriptionBackendClient) RequestPlanChange(ctx context.Context, payload map[string]interface{}) error {
	return m.Called(ctx, payload).Error(0)
}

func (m *SubscriptionBackendClient) FindAllPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]models.SubscriptionPlan)
	return plans, args.Error(1)
}

func (m *SubscriptionBackendClient) FindPlanByID(ctx context.Context, planID string) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, planID)
	plan, _ := args.Get(0).(*models.SubscriptionPlan)
	return plan, args.Error(1)
}

func (m *SubscriptionBackendClient) CreatePlan(ctx context.Context, payload map[string]interface{}) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, payload)
	plan, _ := args.Get(0).(*models.SubscriptionPlan)
	return plan, args.Error(1)
}

func (m *SubscriptionBackendClient) UpdatePlan(ctx context.Context, payload map[string]interface{}) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, payload)
	plan, _ := args.Get(0).(*models.SubscriptionPlan)
	return plan, args.Error(1)
}

func (m *SubscriptionBackendClient) FindAllRequests(ctx context.Context) ([]models.SubscriptionRequest, error) {
	args := m.Called(ctx)
	reqs, _ := args.Get(0).([]models.SubscriptionRequest)
	return reqs, args.Error(1)
}

func (m *SubscriptionBackendClient) ActivateRequest(ctx context.Context, request *requests.ActivateSubscriptionRequest) error {
	return m.Called(ctx, request).Error(0)
}
