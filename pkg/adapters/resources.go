// Package adapters maps between the wire (api) and internal (domain)
// model shapes.
package adapters

import (
	"maps"
	"slices"

	"github.com/costlens/costlens/pkg/models/api"
	"github.com/costlens/costlens/pkg/models/domain"
)

func MapInstanceApiToDomain(rec api.ComputeInstance) domain.ComputeInstance {
	return domain.ComputeInstance{
		ID:           rec.ID,
		Name:         rec.Name,
		Region:       rec.Region,
		InstanceType: rec.InstanceType,
		State:        rec.State,
		Platform:     rec.Platform,
		Tags:         maps.Clone(rec.Tags),
		HourlyCost:   rec.HourlyCost,
		MonthlyCost:  rec.MonthlyCost,
		AnnualCost:   rec.AnnualCost,
	}
}

func MapInstanceDomainToApi(rec domain.ComputeInstance) api.ComputeInstance {
	return api.ComputeInstance{
		ID:           rec.ID,
		Name:         rec.Name,
		Region:       rec.Region,
		InstanceType: rec.InstanceType,
		State:        rec.State,
		Platform:     rec.Platform,
		Tags:         maps.Clone(rec.Tags),
		HourlyCost:   rec.HourlyCost,
		MonthlyCost:  rec.MonthlyCost,
		AnnualCost:   rec.AnnualCost,
		Timestamp:    rec.Timestamp,
	}
}

func MapLoadBalancerApiToDomain(rec api.LoadBalancer) domain.LoadBalancer {
	return domain.LoadBalancer{
		Name:        rec.Name,
		ARN:         rec.ARN,
		Region:      rec.Region,
		Type:        rec.Type,
		Scheme:      rec.Scheme,
		VPCID:       rec.VPCID,
		Metrics:     maps.Clone(rec.Metrics),
		HourlyCost:  rec.HourlyCost,
		MonthlyCost: rec.MonthlyCost,
		AnnualCost:  rec.AnnualCost,
	}
}

func MapLoadBalancerDomainToApi(rec domain.LoadBalancer) api.LoadBalancer {
	return api.LoadBalancer{
		Name:        rec.Name,
		ARN:         rec.ARN,
		Region:      rec.Region,
		Type:        rec.Type,
		Scheme:      rec.Scheme,
		VPCID:       rec.VPCID,
		Metrics:     maps.Clone(rec.Metrics),
		HourlyCost:  rec.HourlyCost,
		MonthlyCost: rec.MonthlyCost,
		AnnualCost:  rec.AnnualCost,
		Timestamp:   rec.Timestamp,
	}
}

func MapAutoScalingGroupApiToDomain(rec api.AutoScalingGroup) domain.AutoScalingGroup {
	return domain.AutoScalingGroup{
		Name:            rec.Name,
		ARN:             rec.ARN,
		Region:          rec.Region,
		MinSize:         rec.MinSize,
		MaxSize:         rec.MaxSize,
		DesiredCapacity: rec.DesiredCapacity,
		InstanceIDs:     slices.Clone(rec.InstanceIDs),
		HealthCheckType: rec.HealthCheckType,
		HourlyCost:      rec.HourlyCost,
		MonthlyCost:     rec.MonthlyCost,
		AnnualCost:      rec.AnnualCost,
		InstanceCosts:   maps.Clone(rec.InstanceCosts),
	}
}

func MapAutoScalingGroupDomainToApi(rec domain.AutoScalingGroup) api.AutoScalingGroup {
	return api.AutoScalingGroup{
		Name:            rec.Name,
		ARN:             rec.ARN,
		Region:          rec.Region,
		MinSize:         rec.MinSize,
		MaxSize:         rec.MaxSize,
		DesiredCapacity: rec.DesiredCapacity,
		InstanceIDs:     slices.Clone(rec.InstanceIDs),
		HealthCheckType: rec.HealthCheckType,
		HourlyCost:      rec.HourlyCost,
		MonthlyCost:     rec.MonthlyCost,
		AnnualCost:      rec.AnnualCost,
		InstanceCosts:   maps.Clone(rec.InstanceCosts),
		Timestamp:       rec.Timestamp,
	}
}

func MapVolumeApiToDomain(rec api.EBSVolume) domain.EBSVolume {
	return domain.EBSVolume{
		ID:          rec.ID,
		Region:      rec.Region,
		SizeGB:      rec.SizeGB,
		VolumeType:  rec.VolumeType,
		State:       rec.State,
		AttachedTo:  rec.AttachedTo,
		MonthlyCost: rec.MonthlyCost,
	}
}

func MapVolumeDomainToApi(rec domain.EBSVolume) api.EBSVolume {
	return api.EBSVolume{
		ID:          rec.ID,
		Region:      rec.Region,
		SizeGB:      rec.SizeGB,
		VolumeType:  rec.VolumeType,
		State:       rec.State,
		AttachedTo:  rec.AttachedTo,
		MonthlyCost: rec.MonthlyCost,
		Timestamp:   rec.Timestamp,
	}
}

func MapDBInstanceApiToDomain(rec api.DBInstance) domain.DBInstance {
	return domain.DBInstance{
		ID:            rec.ID,
		ARN:           rec.ARN,
		Region:        rec.Region,
		Engine:        rec.Engine,
		EngineVersion: rec.EngineVersion,
		InstanceClass: rec.InstanceClass,
		StorageGB:     rec.StorageGB,
		StorageType:   rec.StorageType,
		MultiAZ:       rec.MultiAZ,
		Replicas:      slices.Clone(rec.Replicas),
		Tags:          maps.Clone(rec.Tags),
		InstanceCost:  rec.InstanceCost,
		StorageCost:   rec.StorageCost,
		HourlyCost:    rec.HourlyCost,
		MonthlyCost:   rec.MonthlyCost,
		AnnualCost:    rec.AnnualCost,
	}
}

func MapDBInstanceDomainToApi(rec domain.DBInstance) api.DBInstance {
	return api.DBInstance{
		ID:            rec.ID,
		ARN:           rec.ARN,
		Region:        rec.Region,
		Engine:        rec.Engine,
		EngineVersion: rec.EngineVersion,
		InstanceClass: rec.InstanceClass,
		StorageGB:     rec.StorageGB,
		StorageType:   rec.StorageType,
		MultiAZ:       rec.MultiAZ,
		Replicas:      slices.Clone(rec.Replicas),
		Tags:          maps.Clone(rec.Tags),
		InstanceCost:  rec.InstanceCost,
		StorageCost:   rec.StorageCost,
		HourlyCost:    rec.HourlyCost,
		MonthlyCost:   rec.MonthlyCost,
		AnnualCost:    rec.AnnualCost,
		Timestamp:     rec.Timestamp,
	}
}
