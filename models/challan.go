package models

import "bizdocs/totals"

// Challan statuses and movement types.
const (
	ChallanStatusPending   = "pending"
	ChallanStatusInTransit = "in-transit"
	ChallanStatusDelivered = "delivered"
	ChallanStatusCancelled = "cancelled"

	ChallanTypeOutward = "outward"
	ChallanTypeInward  = "inward"
)

type Challan struct {
	DocumentBase
	Time            string `json:"time,omitempty"`
	Type            string `json:"type,omitempty"`
	TransporterName string `json:"transporterName,omitempty"`
	VehicleNumber   string `json:"vehicleNumber" validate:"required"`
	DriverName      string `json:"driverName,omitempty"`
	DriverPhone     string `json:"driverPhone,omitempty"`
	FromLocation    string `json:"fromLocation,omitempty"`
	ToLocation      string `json:"toLocation,omitempty"`
	DeliveryDate    string `json:"deliveryDate,omitempty"`
	ReceivedBy      string `json:"receivedBy,omitempty"`
}

func (d *Challan) DocType() DocType { return DocTypeChallan }

func (d *Challan) Recompute() {
	d.normalizeItems()
	d.applyTotals(totals.Compute(d.Items, d.Discount))
}

func (d *Challan) Validate() error {
	if err := checkRequired(d); err != nil {
		return err
	}
	return d.validateItems()
}

func (d *Challan) ApplyCompany(c *CompanyProfile) {
	d.snapshotCompany(c, c.PrefixFor(DocTypeChallan))
	if d.Type == "" {
		d.Type = ChallanTypeOutward
	}
	if d.Status == "" {
		d.Status = ChallanStatusPending
	}
}

func (d *Challan) View() *DocumentView {
	v := newView(DocTypeChallan, &d.DocumentBase)
	v.addDate("Challan Date", d.Date)
	v.addDate("Delivery Date", d.DeliveryDate)
	v.addDetail("Vehicle No", d.VehicleNumber)
	v.addDetail("Transporter", d.TransporterName)
	v.addDetail("Driver", d.DriverName)
	v.addDetail("From", d.FromLocation)
	v.addDetail("To", d.ToLocation)
	return v
}
