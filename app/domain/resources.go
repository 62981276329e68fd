package domain

// Backend resource models. JSON field names follow the domain backend's wire
// format; timestamp fields are kept as the backend's string representation.

// Drone is a rescue drone registered in the fleet.
type Drone struct {
	ID                int64   `json:"idDrone,omitempty"`
	Name              string  `json:"nome"`
	Model             string  `json:"modelo"`
	Status            string  `json:"status"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	Battery           int     `json:"bateria"`
	PayloadCapacity   float64 `json:"capacidadeCarga"`
	LastMaintenanceAt string  `json:"dataUltimaManutencao,omitempty"`
	OperatingHours    string  `json:"horarioOperacao"`
	RegisteredAt      string  `json:"dataCadastro,omitempty"`
}

// RiskArea is a monitored risk area.
type RiskArea struct {
	ID             int64   `json:"idArea,omitempty"`
	Name           string  `json:"nomeArea"`
	Description    string  `json:"descricao,omitempty"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Status         string  `json:"status"`
	CoverageRadius float64 `json:"raioCobertura"`
	RegisteredAt   string  `json:"dataCadastro,omitempty"`
}

// Sensor is a field sensor, optionally bound to a risk area.
type Sensor struct {
	ID              int64     `json:"idSensor,omitempty"`
	Type            string    `json:"tipoSensor"`
	Description     string    `json:"descricao,omitempty"`
	MeasurementUnit string    `json:"unidadeMedida"`
	Status          string    `json:"status"`
	ReadingInterval int       `json:"intervaloLeitura"`
	InstalledAt     string    `json:"dataInstalacao,omitempty"`
	Area            *RiskArea `json:"area,omitempty"`
}

// Alert is an event raised for a risk area, optionally involving a drone and
// the user that handled it.
type Alert struct {
	ID          int64     `json:"idAlerta,omitempty"`
	Type        string    `json:"tipoAlerta"`
	OccurredAt  string    `json:"dataHora"`
	Status      string    `json:"status"`
	Severity    string    `json:"gravidade"`
	Description string    `json:"descricao"`
	Area        *RiskArea `json:"area"`
	Drone       *Drone    `json:"drone,omitempty"`
	User        *User     `json:"usuario,omitempty"`
}

// Signage is road signage installed in or near a risk area.
type Signage struct {
	ID          int64     `json:"idSinalizacao,omitempty"`
	Type        string    `json:"tipoSinalizacao"`
	Description string    `json:"descricao,omitempty"`
	Status      string    `json:"status"`
	InstalledAt string    `json:"dataInstalacao,omitempty"`
	Area        *RiskArea `json:"area,omitempty"`
}
