package api

import "time"

// ComputeInstance is the wire shape of a compute instance, used both for
// upsert payloads and list/get responses. Timestamp is output-only; on
// ingestion the store stamps its own value.
type ComputeInstance struct {
	ID           string            `json:"id"`
	Name         string            `json:"name,omitempty"`
	Region       string            `json:"region"`
	InstanceType string            `json:"instance_type,omitempty"`
	State        string            `json:"state,omitempty"`
	Platform     string            `json:"platform,omitempty"`
	Tags         map[string]string `json:"tags,omitempty"`
	HourlyCost   float64           `json:"hourly_cost,omitempty"`
	MonthlyCost  float64           `json:"monthly_cost,omitempty"`
	AnnualCost   float64           `json:"annual_cost,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}

type LoadBalancer struct {
	Name        string             `json:"name"`
	ARN         string             `json:"arn"`
	Region      string             `json:"region"`
	Type        string             `json:"type,omitempty"`
	Scheme      string             `json:"scheme,omitempty"`
	VPCID       string             `json:"vpc_id,omitempty"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
	HourlyCost  float64            `json:"hourly_cost,omitempty"`
	MonthlyCost float64            `json:"monthly_cost,omitempty"`
	AnnualCost  float64            `json:"annual_cost,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
}

type AutoScalingGroup struct {
	Name            string             `json:"name"`
	ARN             string             `json:"arn"`
	Region          string             `json:"region"`
	MinSize         int                `json:"min_size,omitempty"`
	MaxSize         int                `json:"max_size,omitempty"`
	DesiredCapacity int                `json:"desired_capacity,omitempty"`
	InstanceIDs     []string           `json:"instance_ids,omitempty"`
	HealthCheckType string             `json:"health_check_type,omitempty"`
	HourlyCost      float64            `json:"hourly_cost,omitempty"`
	MonthlyCost     float64            `json:"monthly_cost,omitempty"`
	AnnualCost      float64            `json:"annual_cost,omitempty"`
	InstanceCosts   map[string]float64 `json:"instance_costs,omitempty"`
	Timestamp       time.Time          `json:"timestamp"`
}

type EBSVolume struct {
	ID          string    `json:"id"`
	Region      string    `json:"region"`
	SizeGB      int       `json:"size_gb,omitempty"`
	VolumeType  string    `json:"volume_type,omitempty"`
	State       string    `json:"state,omitempty"`
	AttachedTo  string    `json:"attached_to,omitempty"`
	MonthlyCost float64   `json:"monthly_cost,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type DBInstance struct {
	ID            string            `json:"id"`
	ARN           string            `json:"arn"`
	Region        string            `json:"region"`
	Engine        string            `json:"engine,omitempty"`
	EngineVersion string            `json:"engine_version,omitempty"`
	InstanceClass string            `json:"instance_class,omitempty"`
	StorageGB     int               `json:"storage_gb,omitempty"`
	StorageType   string            `json:"storage_type,omitempty"`
	MultiAZ       bool              `json:"multi_az,omitempty"`
	Replicas      []string          `json:"replicas,omitempty"`
	Tags          map[string]string `json:"tags,omitempty"`
	InstanceCost  float64           `json:"instance_cost,omitempty"`
	StorageCost   float64           `json:"storage_cost,omitempty"`
	HourlyCost    float64           `json:"hourly_cost,omitempty"`
	MonthlyCost   float64           `json:"monthly_cost,omitempty"`
	AnnualCost    float64           `json:"annual_cost,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}

// UpsertReceipt acknowledges an accepted write: key fields echoed back,
// nothing derived or store-internal.
type UpsertReceipt struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	ARN    string `json:"arn,omitempty"`
	Region string `json:"region"`
}

// ResourceList wraps an ordered collection read.
type ResourceList[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}
