package service

import (
	"runtime"
	"time"

	"edupanel/config"
	"edupanel/logger"
	"edupanel/web/entity"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// ServerService reports host health for the status endpoint.
type ServerService struct{}

func NewServerService() *ServerService {
	return &ServerService{}
}

func (s *ServerService) GetStatus() *entity.ServerStatus {
	status := &entity.ServerStatus{
		CpuCores: runtime.NumCPU(),
		Version:  config.GetVersion(),
	}

	percents, err := cpu.Percent(time.Second, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	upTime, err := host.Uptime()
	if err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = upTime
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	return status
}
