package domain

import "time"

// ComputeInstance is the current known state of a single compute instance
// as reported by the infrastructure scanner. ID is the natural key.
type ComputeInstance struct {
	ID           string
	Name         string
	Region       string
	InstanceType string
	State        string
	Platform     string
	Tags         map[string]string
	HourlyCost   float64
	MonthlyCost  float64
	AnnualCost   float64
	Timestamp    time.Time
}

// LoadBalancer is keyed by ARN within its collection.
type LoadBalancer struct {
	Name        string
	ARN         string
	Region      string
	Type        string // application, network
	Scheme      string // internet-facing, internal
	VPCID       string
	Metrics     map[string]float64
	HourlyCost  float64
	MonthlyCost float64
	AnnualCost  float64
	Timestamp   time.Time
}

// AutoScalingGroup is keyed by ARN within its collection.
type AutoScalingGroup struct {
	Name            string
	ARN             string
	Region          string
	MinSize         int
	MaxSize         int
	DesiredCapacity int
	InstanceIDs     []string
	HealthCheckType string
	HourlyCost      float64
	MonthlyCost     float64
	AnnualCost      float64
	InstanceCosts   map[string]float64
	Timestamp       time.Time
}

// EBSVolume is keyed by volume ID within its collection.
type EBSVolume struct {
	ID          string
	Region      string
	SizeGB      int
	VolumeType  string // gp2, gp3, io1
	State       string
	AttachedTo  string
	MonthlyCost float64
	Timestamp   time.Time
}

// DBInstance is a managed database instance, keyed by DB instance ID.
type DBInstance struct {
	ID            string
	ARN           string
	Region        string
	Engine        string
	EngineVersion string
	InstanceClass string
	StorageGB     int
	StorageType   string
	MultiAZ       bool
	Replicas      []string
	Tags          map[string]string
	InstanceCost  float64
	StorageCost   float64
	HourlyCost    float64
	MonthlyCost   float64
	AnnualCost    float64
	Timestamp     time.Time
}

// UpsertReceipt is what a collection write hands back to the caller:
// the accepted natural key and region, never the stored record.
type UpsertReceipt struct {
	Key    string
	Region string
}
