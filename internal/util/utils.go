package util

import (
	"gonum.org/v1/gonum/stat"

	"os-scheduler/internal/responses"
)

func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(proccessDetails) == 0 {
		return 0, 0, 0
	}

	waitingTimes := make([]float64, len(proccessDetails))
	responseTimes := make([]float64, len(proccessDetails))
	turnAroundTimes := make([]float64, len(proccessDetails))
	for i, proccess := range proccessDetails {
		waitingTimes[i] = float64(proccess.WaitingTime)
		responseTimes[i] = float64(proccess.ResponseTime)
		turnAroundTimes[i] = float64(proccess.TurnAroundTime)
	}

	averageWaitingTime = stat.Mean(waitingTimes, nil)
	averageResponseTime = stat.Mean(responseTimes, nil)
	averageTimeAroundTime = stat.Mean(turnAroundTimes, nil)
	return
}
